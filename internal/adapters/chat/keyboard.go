package chat

const (
	ButtonAddPlayer = "➕ P"
	ButtonAddBanker = "➕ B"
	ButtonAddTie    = "➕ T"
	ButtonNext      = "▶️ Next Prediction"
	ButtonReset     = "🧹 Reset"
	ButtonStats     = "📊 Stats"
	ButtonUndo      = "↩️ Undo"
	ButtonHelp      = "❓ Help"
)

// Keyboard is the button layout attached to every reply.
func Keyboard() [][]string {
	return [][]string{
		{ButtonAddPlayer, ButtonAddBanker, ButtonAddTie},
		{ButtonNext, ButtonReset},
		{ButtonStats, ButtonUndo, ButtonHelp},
	}
}
