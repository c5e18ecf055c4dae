package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete account " + m.message + " and all of its characters?\n\n"
	content += helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}
