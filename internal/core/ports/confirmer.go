package ports

// Confirmer asks the operator to approve a mutating action.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Interactive reports whether prompts can be answered.
	Interactive() bool

	// Confirm describes action and returns whether the operator approved it.
	Confirm(action string) (bool, error)
}
