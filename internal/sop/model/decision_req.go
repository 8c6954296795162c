package model

import "strings"

// DecisionReq carries approver credentials and comments for an
// approve/reject call. Comments are mandatory for rejection; that rule
// lives in the service since this DTO serves both verdicts.
type DecisionReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Comments string `json:"comments"`
}

func (r *DecisionReq) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Comments = strings.TrimSpace(r.Comments)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
