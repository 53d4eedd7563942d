// Package catalog holds the static role and question reference data.
package catalog

type Role struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Skills      []string `json:"skills"`
}

type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionCode           QuestionType = "code"
	QuestionMultipleChoice QuestionType = "multiple-choice"
)

type Question struct {
	ID            string       `json:"id"`
	RoleID        string       `json:"roleId"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

var Roles = []Role{
	{
		ID:          "frontend-dev",
		Title:       "Front-End Developer",
		Description: "Build user interfaces and interactive web applications",
		Icon:        "💻",
		Skills: []string{
			"HTML/CSS",
			"JavaScript",
			"React/Vue/Angular",
			"Responsive Design",
			"Web Performance",
			"Accessibility",
		},
	},
	{
		ID:          "backend-dev",
		Title:       "Back-End Developer",
		Description: "Create server-side logic and APIs for web applications",
		Icon:        "🔧",
		Skills: []string{
			"Server-side Languages",
			"API Design",
			"Database Management",
			"Authentication",
			"Performance Optimization",
			"Security",
		},
	},
	{
		ID:          "qa-specialist",
		Title:       "QA Specialist",
		Description: "Ensure product quality through testing and quality processes",
		Icon:        "🔍",
		Skills: []string{
			"Test Planning",
			"Manual Testing",
			"Automated Testing",
			"Bug Reporting",
			"Test Frameworks",
			"Performance Testing",
		},
	},
	{
		ID:          "data-specialist",
		Title:       "Data Specialist",
		Description: "Analyze and manage data to support business decisions",
		Icon:        "📊",
		Skills: []string{
			"Data Analysis",
			"SQL",
			"Data Visualization",
			"ETL Processes",
			"Statistical Analysis",
			"Machine Learning Basics",
		},
	},
}

// FallbackRole is used when a session references an unknown role id.
var FallbackRole = Role{
	ID:          "",
	Title:       "Professional",
	Description: "General skill assessment",
	Icon:        "📝",
	Skills: []string{
		"Communication",
		"Problem-solving",
		"Technical knowledge",
		"Teamwork",
		"Adaptability",
	},
}

// RoleByID returns the role for id, or false if the id is unknown.
func RoleByID(id string) (Role, bool) {
	for _, r := range Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// RoleContext returns the role for id, falling back to the generic
// professional profile for unknown ids.
func RoleContext(id string) Role {
	if r, ok := RoleByID(id); ok {
		return r
	}
	return FallbackRole
}

// SkillSummary is the short comma-separated skill list fed into the
// interviewer system prompt.
func SkillSummary(roleID string) string {
	summaries := map[string]string{
		"frontend-dev":    "HTML, CSS, JavaScript, React, responsive design, web performance",
		"backend-dev":     "server-side languages, database management, API design, authentication, security",
		"qa-specialist":   "test planning, manual testing, automated testing, bug reporting, quality processes",
		"data-specialist": "data analysis, SQL, visualization, statistical analysis, data processing",
	}
	if s, ok := summaries[roleID]; ok {
		return s
	}
	return "communication, problem-solving, technical knowledge"
}

// QuestionsByRole returns the ordered practice question list for a role.
func QuestionsByRole(roleID string) []Question {
	return questions[roleID]
}
