package entity

// RegistrationState is the coordinator's assessment of a device relative to the backend.
type RegistrationState int

const (
	// RegistrationNotRegistered means no active, current record exists.
	RegistrationNotRegistered RegistrationState = iota
	// RegistrationPermissionPending is reserved for in-flight permission prompts.
	RegistrationPermissionPending
	// RegistrationPermissionDenied means the user declined notifications; sticky until cleared.
	RegistrationPermissionDenied
	// RegistrationRegistered means an active and fresh record exists.
	RegistrationRegistered
	// RegistrationFailed means the status check could not complete.
	RegistrationFailed
)

var registrationStateNames = map[RegistrationState]string{
	RegistrationNotRegistered:     "NotRegistered",
	RegistrationPermissionPending: "PermissionPending",
	RegistrationPermissionDenied:  "PermissionDenied",
	RegistrationRegistered:        "Registered",
	RegistrationFailed:            "Failed",
}

// String returns the state name.
func (s RegistrationState) String() string {
	if name, ok := registrationStateNames[s]; ok {
		return name
	}

	return "Unknown"
}

// ShouldPrompt reports whether a device in this state should be asked for notification permission.
// Failed is treated permissively so a backend outage never locks a user out of the prompt.
func (s RegistrationState) ShouldPrompt() bool {
	return s == RegistrationNotRegistered || s == RegistrationFailed
}

// PermissionState is the persisted outcome of the last OS permission prompt.
type PermissionState string

const (
	// PermissionGranted is stored when the user allowed notifications.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied is stored when the user declined notifications.
	PermissionDenied PermissionState = "denied"
	// PermissionUnknown is the absent value: the user was never asked.
	PermissionUnknown PermissionState = ""
)

// PermissionStateFromBool maps a prompt outcome to its persisted value.
func PermissionStateFromBool(granted bool) PermissionState {
	if granted {
		return PermissionGranted
	}

	return PermissionDenied
}
