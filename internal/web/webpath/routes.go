package webpath

const (
	Health = "/health"

	Api = "/api"

	AuthRegister = Api + "/auth/register"
	AuthLogin    = Api + "/auth/login"
	AuthMe       = Api + "/auth/me"
	AuthSignout  = Api + "/auth/signout"

	UsersVolunteers = Api + "/users/volunteers"
	User            = Api + "/users/:id"

	Opportunities                    = Api + "/opportunities"
	OpportunitiesRecommended         = Opportunities + "/recommended"
	OpportunitiesMy                  = Opportunities + "/my"
	Opportunity                      = Opportunities + "/:id"
	OpportunityRecommendedVolunteers = Opportunity + "/recommended-volunteers"
	OpportunityApplications          = Opportunity + "/applications"
	Applications                     = Api + "/applications"
	ApplicationsMy                   = Applications + "/my"
	Application                      = Applications + "/:id"
)

// Path lists the public routes by name, for the index handler.
func Path() map[string]string {
	return map[string]string{
		"Health":                   Health,
		"Register":                 AuthRegister,
		"Login":                    AuthLogin,
		"Me":                       AuthMe,
		"Volunteers":               UsersVolunteers,
		"Opportunities":            Opportunities,
		"RecommendedOpportunities": OpportunitiesRecommended,
		"MyOpportunities":          OpportunitiesMy,
		"MyApplications":           ApplicationsMy,
	}
}
