package model

// Operation kinds
const (
	KindCreate = "CREATE"
	KindModify = "MODIFY"
	KindDelete = "DELETE"
)

// Operation status. PENDING is the only non-terminal state. Decided
// records are removed from the live collection; only the action history
// remains.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Action types recorded in history
const (
	ActionCreateRequested = "CREATE_REQUESTED"
	ActionModifyRequested = "MODIFY_REQUESTED"
	ActionDeleteRequested = "DELETE_REQUESTED"

	ActionCreateApproved = "CREATE_APPROVED"
	ActionModifyApproved = "MODIFY_APPROVED"
	ActionDeleteApproved = "DELETE_APPROVED"

	ActionCreateRejected = "CREATE_REJECTED"
	ActionModifyRejected = "MODIFY_REJECTED"
	ActionDeleteRejected = "DELETE_REJECTED"

	ActionCreateAutoApproved = "CREATE_AUTO_APPROVED"
	ActionModifyAutoApproved = "MODIFY_AUTO_APPROVED"
	ActionDeleteAutoApproved = "DELETE_AUTO_APPROVED"
)

// ActorSystem is the reviewer identity used for sweeper auto-approvals.
const ActorSystem = "system"

// ModifiableFields lists document fields a MODIFY change-set may touch.
// Unknown fields are rejected at proposal time.
var ModifiableFields = map[string]bool{
	"fileName":   true,
	"category":   true,
	"brand":      true,
	"version":    true,
	"uploadedBy": true,
}
