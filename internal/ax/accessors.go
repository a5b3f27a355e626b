package ax

// Typed shorthands for the well-known attributes. Each one is a plain Get.

func (e *Element) Children() ([]*Element, error)         { return Get(e, Children) }
func (e *Element) VisibleChildren() ([]*Element, error)  { return Get(e, VisibleChildren) }
func (e *Element) SelectedChildren() ([]*Element, error) { return Get(e, SelectedChildren) }
func (e *Element) Parent() (*Element, error)             { return Get(e, Parent) }
func (e *Element) Window() (*Element, error)             { return Get(e, Window) }
func (e *Element) Windows() ([]*Element, error)          { return Get(e, Windows) }
func (e *Element) TopLevelUIElement() (*Element, error)  { return Get(e, TopLevelUIElement) }
func (e *Element) FocusedUIElement() (*Element, error)   { return Get(e, FocusedUIElement) }
func (e *Element) FocusedApplication() (*Element, error) { return Get(e, FocusedApplication) }
func (e *Element) Contents() (*Element, error)           { return Get(e, Contents) }
func (e *Element) Role() (string, error)                 { return Get(e, Role) }
func (e *Element) Subrole() (string, error)              { return Get(e, Subrole) }
func (e *Element) RoleDescription() (string, error)      { return Get(e, RoleDescription) }
func (e *Element) Title() (string, error)                { return Get(e, Title) }
func (e *Element) Description() (string, error)          { return Get(e, Description) }
func (e *Element) Help() (string, error)                 { return Get(e, Help) }
func (e *Element) Identifier() (string, error)           { return Get(e, Identifier) }
func (e *Element) LabelValue() (string, error)           { return Get(e, LabelValue) }
func (e *Element) PlaceholderValue() (string, error)     { return Get(e, PlaceholderValue) }
func (e *Element) Document() (string, error)             { return Get(e, Document) }
func (e *Element) SelectedText() (string, error)         { return Get(e, SelectedText) }
func (e *Element) SelectedTextRange() (Range, error)     { return Get(e, SelectedTextRange) }
func (e *Element) Value() (Value, error)                 { return Get(e, ValueAttr) }
func (e *Element) ValueDescription() (string, error)     { return Get(e, ValueDescription) }
func (e *Element) MinValue() (Value, error)              { return Get(e, MinValue) }
func (e *Element) MaxValue() (Value, error)              { return Get(e, MaxValue) }
func (e *Element) Enabled() (bool, error)                { return Get(e, Enabled) }
func (e *Element) Focused() (bool, error)                { return Get(e, Focused) }
func (e *Element) Main() (bool, error)                   { return Get(e, Main) }
func (e *Element) Minimized() (bool, error)              { return Get(e, Minimized) }
func (e *Element) ElementBusy() (bool, error)            { return Get(e, ElementBusy) }
func (e *Element) Position() (Point, error)              { return Get(e, Position) }
func (e *Element) Size() (Size, error)                   { return Get(e, SizeAttr) }
func (e *Element) Frame() (Rect, error)                  { return Get(e, Frame) }
func (e *Element) URL() (URL, error)                     { return Get(e, URLAttr) }

func (e *Element) SetValue(v Value) error         { return Set(e, ValueAttr, v) }
func (e *Element) SetFocused(v bool) error        { return Set(e, Focused, v) }
func (e *Element) SetMain(v bool) error           { return Set(e, Main, v) }
func (e *Element) SetMinimized(v bool) error      { return Set(e, Minimized, v) }
func (e *Element) SetPosition(p Point) error      { return Set(e, Position, p) }
func (e *Element) SetSize(s Size) error           { return Set(e, SizeAttr, s) }
func (e *Element) SetSelectedText(s string) error { return Set(e, SelectedText, s) }

// Action shorthands.

func (e *Element) Press() error           { return e.PerformAction(ActionPress) }
func (e *Element) Increment() error       { return e.PerformAction(ActionIncrement) }
func (e *Element) Decrement() error       { return e.PerformAction(ActionDecrement) }
func (e *Element) Confirm() error         { return e.PerformAction(ActionConfirm) }
func (e *Element) Cancel() error          { return e.PerformAction(ActionCancel) }
func (e *Element) ShowAlternateUI() error { return e.PerformAction(ActionShowAlternateUI) }
func (e *Element) ShowDefaultUI() error   { return e.PerformAction(ActionShowDefaultUI) }
func (e *Element) Raise() error           { return e.PerformAction(ActionRaise) }
func (e *Element) ShowMenu() error        { return e.PerformAction(ActionShowMenu) }
func (e *Element) Pick() error            { return e.PerformAction(ActionPick) }
