package view

import "github.com/Rorical/NearCounter/internal/models"

// Node is one element of the declarative view tree.
type Node struct {
	Tag      string
	ID       string
	Classes  []string
	Text     string
	Hidden   bool
	Disabled bool
	OnClick  models.Msg
	Children []*Node
}

func el(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

func (n *Node) with(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) withID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) withText(text string) *Node {
	n.Text = text
	return n
}

// HasClass reports whether class is set on n.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in the subtree with the given id.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Tree builds the page for sc.
func Tree(sc Screen) *Node {
	signIn := el("div", "sign-in").with(
		el("p").withText("You'll need to sign in to call contract methods:"),
		button(sc, "sign-in", "btn", "btn-primary"),
	).withID("sign-in-panel")
	signIn.Hidden = sc.SignedIn

	mainPanel := el("div", "after-sign-in").with(
		el("div", "scene").with(
			el("div", "gameboy").with(
				el("div", "body-shape", "shadow"),
				el("div", "body-shape", "side"),
				el("div", "body-shape", "front").with(
					screenNode(sc),
					buttonsNode(sc),
				),
			),
		),
		el("div", "sign-out").with(button(sc, "sign-out", "btn", "btn-primary")),
	).withID("main-panel")
	mainPanel.Hidden = !sc.SignedIn

	return el("div", "container").with(
		el("h1").withText("This is just a counter, but this time on blockchain!"),
		signIn,
		mainPanel,
	)
}

func screenNode(sc Screen) *Node {
	dot := el("div", "dot")
	if sc.LightOn {
		dot.Classes = append(dot.Classes, "on")
	}

	mouth := el("div", "mouth")
	if sc.PositiveCount {
		mouth.Classes = append(mouth.Classes, "smile")
	} else {
		mouth.Classes = append(mouth.Classes, "cry")
	}
	tongue := el("div", "tongue").withID("tongue")
	tongue.Hidden = !sc.ShowTongue

	display := el("div", "loader").withID("show").withText(sc.Display)
	if sc.HasCount {
		display.Classes = []string{"number"}
	}

	return el("div", "screen").with(
		dot,
		el("div", "face").with(
			el("div", "eyes-row").with(eye("left", sc.LeftEyeOpen), eye("right", sc.RightEyeOpen)),
			el("div", "mouth-row").with(mouth, tongue),
		),
		display,
	)
}

func eye(id string, open bool) *Node {
	n := el("div").withID(id).with(el("div", "pupil"))
	if !open {
		n.Classes = []string{"closed"}
	}
	return n
}

func buttonsNode(sc Screen) *Node {
	return el("div", "buttons").with(
		el("div", "row").with(
			button(sc, "plus", "arrows"),
			button(sc, "minus", "arrows"),
		),
		el("div", "selects", "row").with(
			el("div", "ab").with(
				button(sc, "a", "r", "a"),
				button(sc, "b", "r", "b"),
				button(sc, "c", "r", "c"),
				button(sc, "d", "r", "d"),
			),
		),
	)
}

// button renders the control with the given id. Controls that are not part
// of the current branch are rendered inert.
func button(sc Screen, id string, classes ...string) *Node {
	n := el("button", classes...).withID(id)
	for _, c := range sc.Controls {
		if c.ID == id {
			n.Text = c.Label
			n.OnClick = c.Msg
			n.Disabled = c.Disabled
			return n
		}
	}
	n.Text = labels[id]
	n.Disabled = true
	return n
}

var labels = map[string]string{
	"sign-in":  "Sign In",
	"sign-out": "Sign Out",
	"plus":     "+",
	"minus":    "-",
	"a":        "RS",
	"b":        "LE",
	"c":        "RE",
	"d":        "L",
}
