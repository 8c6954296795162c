package model

import "strings"

// ModifyDocumentReq proposes a change-set against an existing document.
// The change-set is validated here, at proposal time, not at execution.
// VersionUpdateType asks the engine to compute the version bump itself
// instead of the caller spelling out the old/new pair.
type ModifyDocumentReq struct {
	Changes            map[string]FieldChange `json:"changes"`
	VersionUpdateType  string                 `json:"version_update_type" validate:"omitempty,oneof=MAJOR MINOR"`
	RequestedBy        string                 `json:"requested_by" validate:"required"`
	AssignedApproverID string                 `json:"assigned_approver_id"`
	Comments           string                 `json:"comments"`
}

func (r *ModifyDocumentReq) Validate() error {
	r.RequestedBy = strings.TrimSpace(r.RequestedBy)
	r.VersionUpdateType = strings.TrimSpace(r.VersionUpdateType)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if len(r.Changes) == 0 && r.VersionUpdateType == "" {
		return &ErrorDetail{Code: "bad_request", Message: "changes are required"}
	}
	for field := range r.Changes {
		if !ModifiableFields[field] {
			return &ErrorDetail{Code: "bad_request", Message: "field cannot be modified: " + field}
		}
	}
	if r.VersionUpdateType != "" {
		if _, ok := r.Changes["version"]; ok {
			return &ErrorDetail{Code: "bad_request", Message: "version change and version_update_type are mutually exclusive"}
		}
	}
	return nil
}
