package workflow

import (
	"errors"

	"egov-portal-backend/internal/domain/user"
)

var ErrForbidden = errors.New("role is not permitted to perform this action")

// Action names a transition or review operation. Each action declares the
// roles permitted to invoke it, so gating lives at the usecase boundary
// instead of being scattered per endpoint.
type Action string

const (
	ZoningSubmit          Action = "zoning.submit"
	ZoningStartReview     Action = "zoning.start_review"
	ZoningForwardTech     Action = "zoning.forward_technical"
	ZoningReturnTech      Action = "zoning.return_technical"
	ZoningRequireChanges  Action = "zoning.require_changes"
	ZoningResumeReview    Action = "zoning.resume_review"
	ZoningApprove         Action = "zoning.approve"
	ZoningReject          Action = "zoning.reject"
	ZoningVerifyDocument  Action = "zoning.verify_document"
	ZoningUploadDocument  Action = "zoning.upload_document"

	HousingSubmit            Action = "housing.submit"
	HousingStartReview       Action = "housing.start_review"
	HousingScheduleInspect   Action = "housing.schedule_inspection"
	HousingCompleteInspect   Action = "housing.complete_inspection"
	HousingRequestInfo       Action = "housing.request_info"
	HousingResumeReview      Action = "housing.resume_review"
	HousingHold              Action = "housing.hold"
	HousingApprove           Action = "housing.approve"
	HousingReject            Action = "housing.reject"
	HousingWithdraw          Action = "housing.withdraw"
	HousingAppeal            Action = "housing.appeal"
	HousingReopenAppeal      Action = "housing.reopen_appeal"
	HousingIssueOffer        Action = "housing.issue_offer"
	HousingAssignBeneficiary Action = "housing.assign_beneficiary"
	HousingClose             Action = "housing.close"
	HousingVerifyDocument    Action = "housing.verify_document"
	HousingUploadDocument    Action = "housing.upload_document"
)

var policy = map[Action][]user.Role{
	ZoningSubmit:         {user.RoleCitizen},
	ZoningStartReview:    {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningForwardTech:    {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningReturnTech:     {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningRequireChanges: {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningResumeReview:   {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningApprove:        {user.RoleZoningAdmin},
	ZoningReject:         {user.RoleZoningAdmin},
	ZoningVerifyDocument: {user.RoleZoningStaff, user.RoleZoningAdmin},
	ZoningUploadDocument: {user.RoleCitizen},

	HousingSubmit:            {user.RoleCitizen},
	HousingStartReview:       {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingScheduleInspect:   {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingCompleteInspect:   {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingRequestInfo:       {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingResumeReview:      {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingHold:              {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingApprove:           {user.RoleHousingAdmin},
	HousingReject:            {user.RoleHousingAdmin},
	HousingWithdraw:          {user.RoleCitizen},
	HousingAppeal:            {user.RoleCitizen},
	HousingReopenAppeal:      {user.RoleHousingAdmin},
	HousingIssueOffer:        {user.RoleHousingAdmin},
	HousingAssignBeneficiary: {user.RoleHousingAdmin},
	HousingClose:             {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingVerifyDocument:    {user.RoleHousingStaff, user.RoleHousingAdmin},
	HousingUploadDocument:    {user.RoleCitizen},
}

// Allowed reports whether the role may invoke the action.
func Allowed(role user.Role, a Action) bool {
	for _, r := range policy[a] {
		if r == role {
			return true
		}
	}
	return false
}

// Check is the boundary guard used by usecases.
func Check(actor user.Actor, a Action) error {
	if !Allowed(actor.Role, a) {
		return ErrForbidden
	}
	return nil
}
