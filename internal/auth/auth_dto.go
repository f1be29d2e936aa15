package auth

const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

type LoginRequest struct {
	UserID   string `form:"UserId" json:"UserId" binding:"required"`
	Password string `form:"Password" json:"Password" binding:"required"`
	Role     string `form:"Role" json:"Role" binding:"required"`
}

// Login outcomes. Failed credentials are part of the normal response
// contract (200 with a message), not errors; only invalid input and store
// failures travel as errors.
type LoginOutcome int

const (
	OutcomeSuccess LoginOutcome = iota
	OutcomeUserNotFound
	OutcomeWrongPassword
)

type LoginResult struct {
	Outcome LoginOutcome
	// Dashboard is the page the frontend should present on success.
	Dashboard string
	// AccessToken is set on success so later requests can carry identity.
	AccessToken string
}
