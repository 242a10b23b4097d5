package form

// Fixed status texts written by the controller actions.
const (
	MessageSaved     = "Form validated locally (simulated save). Check console for payload."
	MessageNew       = "Form cleared for a new entry."
	MessageCancelled = "Edits cancelled. Form reset."
	MessageSaveError = "Save failed. Form data was not handed off."
)
