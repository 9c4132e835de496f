package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/mossback/spellstorm-mp/config"
	"golang.org/x/image/font/gofont/goregular"
)

// RegisterUI is the join form: username, character class, server
// address, connect.
type RegisterUI struct {
	UI *ebitenui.UI

	OnConnect func(address, username, characterClass string)

	usernameInput *widget.TextInput
	addressInput  *widget.TextInput
	statusLabel   *widget.Label
	connectBtn    *widget.Button
	classButtons  map[string]*widget.Button

	selectedClass string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewRegisterUI(onConnect func(address, username, characterClass string)) *RegisterUI {
	ui := &RegisterUI{
		OnConnect:     onConnect,
		classButtons:  map[string]*widget.Button{},
		selectedClass: cfg.CharacterClasses[0],
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *RegisterUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *RegisterUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("JOIN SPELLSTORM", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildFormPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *RegisterUI) buildFormPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.usernameInput = ui.textInput("wizard_01", 160)
	panel.AddChild(ui.labeledRow("Name:     ", ui.usernameInput))

	panel.AddChild(ui.buildClassRow())

	ui.addressInput = ui.textInput(cfg.Net.DefaultAddress, 160)
	panel.AddChild(ui.labeledRow("Address:  ", ui.addressInput))

	ui.connectBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Connect", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.Address(), ui.Username(), ui.selectedClass)
			}
		}),
	)
	panel.AddChild(ui.connectBtn)

	return panel
}

func (ui *RegisterUI) buildClassRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Class:    ", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)

	for _, class := range cfg.CharacterClasses {
		class := class
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 22)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			}),
			widget.ButtonOpts.Text(class, &ui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{200, 255, 200, 255},
				Pressed: color.RGBA{150, 200, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				ui.selectClass(class)
			}),
		)
		ui.classButtons[class] = btn
		row.AddChild(btn)
	}
	ui.selectClass(ui.selectedClass)

	return row
}

func (ui *RegisterUI) selectClass(class string) {
	ui.selectedClass = class
	for name, btn := range ui.classButtons {
		// Selected class stays visually pressed.
		btn.GetWidget().Disabled = name == class
	}
}

func (ui *RegisterUI) labeledRow(labelText string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	label := widget.NewLabel(
		widget.LabelOpts.Text(labelText, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)
	row.AddChild(input)
	return row
}

func (ui *RegisterUI) textInput(placeholder string, width int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

// Username returns the entered username, defaulting to the placeholder.
func (ui *RegisterUI) Username() string {
	name := ui.usernameInput.GetText()
	if name == "" {
		name = "wizard_01"
	}
	return name
}

// Address returns the entered server address, defaulting to the
// configured one.
func (ui *RegisterUI) Address() string {
	addr := ui.addressInput.GetText()
	if addr == "" {
		addr = cfg.Net.DefaultAddress
	}
	return addr
}

// Prefill fills the form from a saved profile.
func (ui *RegisterUI) Prefill(username, characterClass, address string) {
	if username != "" {
		ui.usernameInput.SetText(username)
	}
	if address != "" {
		ui.addressInput.SetText(address)
	}
	for _, class := range cfg.CharacterClasses {
		if class == characterClass {
			ui.selectClass(class)
			break
		}
	}
}

func (ui *RegisterUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *RegisterUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *RegisterUI) Update() {
	ui.UI.Update()
}
