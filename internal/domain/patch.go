package domain

// PatchOp is the opcode of a single-field patch operation.
type PatchOp string

const (
	PatchAdd     PatchOp = "ADD"
	PatchReplace PatchOp = "REPLACE"
	PatchRemove  PatchOp = "REMOVE"
	PatchMove    PatchOp = "MOVE"
)

// PatchOperation replaces one field of a resource. From is accepted on the
// wire but unused.
type PatchOperation struct {
	From  string  `json:"from,omitempty"`
	Op    PatchOp `json:"op" validate:"required,oneof=ADD REPLACE REMOVE MOVE"`
	Path  string  `json:"path" validate:"required"`
	Value any     `json:"value"`
}
