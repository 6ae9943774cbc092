package types

type Status string

const (
	StatusOK              Status = "ok"
	StatusValidationError Status = "validation_error"
	StatusPermissionError Status = "permission_error"
	StatusUnavailable     Status = "unavailable"
)

type (
	// ControlRequest is what a remote caller sends for one of the four intents.
	// Action may be left empty, the method already names it. Port is wider
	// than a TCP port so out of range values reach validation.
	ControlRequest struct {
		Action        Action `json:"action,omitempty" validate:"omitempty,oneof=allow block"`
		RemoteAddress string `json:"remote_address,omitempty" validate:"omitempty,ip"`
		Port          int    `json:"port,omitempty" validate:"min=0,max=65535"`
	}

	Outcome struct {
		Status  Status `json:"status"`
		Message string `json:"message"`
	}

	RulesReply struct {
		Outcome
		Rules []RuleSummary `json:"rules"`
	}

	PortStatusRequest struct {
		Port int `json:"port" validate:"required,min=1,max=65535"`
	}

	PortStatusReply struct {
		Outcome
		Port int  `json:"port"`
		Open bool `json:"open"`
	}
)

func (o Outcome) OK() bool {
	return o.Status == StatusOK
}
