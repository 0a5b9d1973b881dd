package auth

// Action is a navigation entry a role may be offered.
type Action string

const (
	ActionEnterShoe      Action = "enter_shoe"
	ActionViewShoes      Action = "view_shoes"
	ActionCreateModel    Action = "create_model"
	ActionViewModels     Action = "view_models"
	ActionCreateGraphs   Action = "create_graphs"
	ActionCreateAccount  Action = "create_account"
	ActionManageAccounts Action = "manage_accounts"
	ActionBackup         Action = "backup"
)

var (
	baseActions    = []Action{ActionEnterShoe, ActionViewShoes}
	prodEngActions = []Action{ActionCreateModel, ActionViewModels, ActionCreateGraphs}
	adminActions   = []Action{ActionCreateAccount, ActionManageAccounts, ActionBackup}
)

// capabilities is the single role → allowed actions table. Order within a
// role is the order the navigation renders.
var capabilities = map[Role][]Action{
	RoleUser:    concat(baseActions),
	RoleProdEng: concat(baseActions, prodEngActions),
	RoleAdmin:   concat(baseActions, prodEngActions, adminActions),
}

var actionLabels = map[Action]string{
	ActionEnterShoe:      "Enter Shoe Data",
	ActionViewShoes:      "View Shoe Data",
	ActionCreateModel:    "Create Shoe Model",
	ActionViewModels:     "View Shoe Models",
	ActionCreateGraphs:   "Create Graphs",
	ActionCreateAccount:  "Create New Account",
	ActionManageAccounts: "Manage Accounts",
	ActionBackup:         "Backup Database",
}

// Label returns the navigation text for the action.
func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

// ActionsFor returns the actions offered to role, in display order.
// Unknown roles get none. The returned slice is a copy.
func ActionsFor(role Role) []Action {
	actions := capabilities[role]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Can reports whether role is offered action.
func Can(role Role, action Action) bool {
	for _, a := range capabilities[role] {
		if a == action {
			return true
		}
	}
	return false
}

func concat(groups ...[]Action) []Action {
	var out []Action
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
