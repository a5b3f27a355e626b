package ax

// Well-known attributes.
var (
	AllowedValues         = define[[]Value]("AXAllowedValues", KindArray, false)
	Children              = define[[]*Element]("AXChildren", KindElementArray, false)
	Contents              = define[*Element]("AXContents", KindElement, false)
	Description           = define[string]("AXDescription", KindString, false)
	Document              = define[string]("AXDocument", KindString, false)
	ElementBusy           = define[bool]("AXElementBusy", KindBool, false)
	Enabled               = define[bool]("AXEnabled", KindBool, false)
	FocusedApplication    = define[*Element]("AXFocusedApplication", KindElement, false)
	FocusedUIElement      = define[*Element]("AXFocusedUIElement", KindElement, false)
	Focused               = define[bool]("AXFocused", KindBool, true)
	Frame                 = define[Rect]("AXFrame", KindRect, false)
	Help                  = define[string]("AXHelp", KindString, false)
	Identifier            = define[string]("AXIdentifier", KindString, false)
	LabelValue            = define[string]("AXLabelValue", KindString, false)
	Main                  = define[bool]("AXMain", KindBool, true)
	MaxValue              = define[Value]("AXMaxValue", KindAny, false)
	MenuItemCmdModifiers  = define[float64]("AXMenuItemCmdModifiers", KindNumber, false)
	MenuItemCmdChar       = define[string]("AXMenuItemCmdChar", KindString, false)
	MenuItemCmdVirtualKey = define[string]("AXMenuItemCmdVirtualKey", KindString, false)
	MenuItemMarkChar      = define[string]("AXMenuItemMarkChar", KindString, false)
	MenuItemCmdGlyph      = define[string]("AXMenuItemCmdGlyph", KindString, false)
	MinValue              = define[Value]("AXMinValue", KindAny, false)
	Minimized             = define[bool]("AXMinimized", KindBool, true)
	Parent                = define[*Element]("AXParent", KindElement, false)
	PlaceholderValue      = define[string]("AXPlaceholderValue", KindString, false)
	Position              = define[Point]("AXPosition", KindPoint, true)
	Role                  = define[string]("AXRole", KindString, false)
	RoleDescription       = define[string]("AXRoleDescription", KindString, false)
	SelectedChildren      = define[[]*Element]("AXSelectedChildren", KindElementArray, false)
	Subrole               = define[string]("AXSubrole", KindString, false)
	SizeAttr              = define[Size]("AXSize", KindSize, true)
	SelectedText          = define[string]("AXSelectedText", KindString, true)
	SelectedTextRange     = define[Range]("AXSelectedTextRange", KindRange, true)
	Title                 = define[string]("AXTitle", KindString, false)
	TopLevelUIElement     = define[*Element]("AXTopLevelUIElement", KindElement, false)
	ValueAttr             = define[Value]("AXValue", KindAny, true)
	ValueDescription      = define[string]("AXValueDescription", KindString, false)
	ValueIncrement        = define[Value]("AXValueIncrement", KindAny, false)
	VisibleChildren       = define[[]*Element]("AXVisibleChildren", KindElementArray, false)
	Window                = define[*Element]("AXWindow", KindElement, false)
	Windows               = define[[]*Element]("AXWindows", KindElementArray, false)
	VisibleCharacterRange = define[Range]("AXVisibleCharacterRange", KindRange, false)
	URLAttr               = define[URL]("AXURL", KindURL, false)
)

// Well-known parameterized attributes.
var (
	BoundsForRange            = defineParameterized[Rect]("AXBoundsForRange", KindRect, KindRange)
	LineForIndex              = defineParameterized[float64]("AXLineForIndex", KindNumber, KindNumber)
	RangeForLine              = defineParameterized[Range]("AXRangeForLine", KindRange, KindNumber)
	RangeForPosition          = defineParameterized[Range]("AXRangeForPosition", KindRange, KindPoint)
	StringForRange            = defineParameterized[string]("AXStringForRange", KindString, KindRange)
	NextLineRangeForIndex     = defineParameterized[Range]("AXNextLineRangeForIndex", KindRange, KindNumber)
	PreviousLineRangeForIndex = defineParameterized[Range]("AXPreviousLineRangeForIndex", KindRange, KindNumber)
)

// Actions.
const (
	ActionPress           = "AXPress"
	ActionIncrement       = "AXIncrement"
	ActionDecrement       = "AXDecrement"
	ActionConfirm         = "AXConfirm"
	ActionCancel          = "AXCancel"
	ActionShowAlternateUI = "AXShowAlternateUI"
	ActionShowDefaultUI   = "AXShowDefaultUI"
	ActionRaise           = "AXRaise"
	ActionShowMenu        = "AXShowMenu"
	ActionPick            = "AXPick"
)

// Notifications.
const (
	NotificationMainWindowChanged       = "AXMainWindowChanged"
	NotificationFocusedWindowChanged    = "AXFocusedWindowChanged"
	NotificationFocusedUIElementChanged = "AXFocusedUIElementChanged"
	NotificationApplicationActivated    = "AXApplicationActivated"
	NotificationApplicationDeactivated  = "AXApplicationDeactivated"
	NotificationApplicationHidden       = "AXApplicationHidden"
	NotificationApplicationShown        = "AXApplicationShown"
	NotificationWindowCreated           = "AXWindowCreated"
	NotificationWindowMoved             = "AXWindowMoved"
	NotificationWindowResized           = "AXWindowResized"
	NotificationWindowMiniaturized      = "AXWindowMiniaturized"
	NotificationWindowDeminiaturized    = "AXWindowDeminiaturized"
	NotificationDrawerCreated           = "AXDrawerCreated"
	NotificationSheetCreated            = "AXSheetCreated"
	NotificationUIElementDestroyed      = "AXUIElementDestroyed"
	NotificationValueChanged            = "AXValueChanged"
	NotificationTitleChanged            = "AXTitleChanged"
	NotificationResized                 = "AXResized"
	NotificationMoved                   = "AXMoved"
	NotificationCreated                 = "AXCreated"
	NotificationLayoutChanged           = "AXLayoutChanged"
	NotificationHelpTagCreated          = "AXHelpTagCreated"
	NotificationSelectedTextChanged     = "AXSelectedTextChanged"
	NotificationRowCountChanged         = "AXRowCountChanged"
	NotificationSelectedChildrenChanged = "AXSelectedChildrenChanged"
	NotificationSelectedRowsChanged     = "AXSelectedRowsChanged"
	NotificationSelectedColumnsChanged  = "AXSelectedColumnsChanged"
	NotificationRowExpanded             = "AXRowExpanded"
	NotificationRowCollapsed            = "AXRowCollapsed"
	NotificationSelectedCellsChanged    = "AXSelectedCellsChanged"
	NotificationUnitsChanged            = "AXUnitsChanged"
	NotificationSelectedChildrenMoved   = "AXSelectedChildrenMoved"
	NotificationAnnouncementRequested   = "AXAnnouncementRequested"
	NotificationMenuOpened              = "AXMenuOpened"
	NotificationMenuClosed              = "AXMenuClosed"
	NotificationMenuItemSelected        = "AXMenuItemSelected"
)

// Roles.
const (
	RoleApplication        = "AXApplication"
	RoleSystemWide         = "AXSystemWide"
	RoleWindow             = "AXWindow"
	RoleSheet              = "AXSheet"
	RoleDrawer             = "AXDrawer"
	RoleGrowArea           = "AXGrowArea"
	RoleImage              = "AXImage"
	RoleUnknown            = "AXUnknown"
	RoleButton             = "AXButton"
	RoleRadioButton        = "AXRadioButton"
	RoleCheckBox           = "AXCheckBox"
	RolePopUpButton        = "AXPopUpButton"
	RoleMenuButton         = "AXMenuButton"
	RoleTabGroup           = "AXTabGroup"
	RoleTable              = "AXTable"
	RoleColumn             = "AXColumn"
	RoleRow                = "AXRow"
	RoleOutline            = "AXOutline"
	RoleBrowser            = "AXBrowser"
	RoleScrollArea         = "AXScrollArea"
	RoleScrollBar          = "AXScrollBar"
	RoleRadioGroup         = "AXRadioGroup"
	RoleList               = "AXList"
	RoleGroup              = "AXGroup"
	RoleValueIndicator     = "AXValueIndicator"
	RoleComboBox           = "AXComboBox"
	RoleSlider             = "AXSlider"
	RoleIncrementor        = "AXIncrementor"
	RoleBusyIndicator      = "AXBusyIndicator"
	RoleProgressIndicator  = "AXProgressIndicator"
	RoleRelevanceIndicator = "AXRelevanceIndicator"
	RoleToolbar            = "AXToolbar"
	RoleDisclosureTriangle = "AXDisclosureTriangle"
	RoleTextField          = "AXTextField"
	RoleTextArea           = "AXTextArea"
	RoleStaticText         = "AXStaticText"
	RoleMenuBar            = "AXMenuBar"
	RoleMenuBarItem        = "AXMenuBarItem"
	RoleMenu               = "AXMenu"
	RoleMenuItem           = "AXMenuItem"
	RoleSplitGroup         = "AXSplitGroup"
	RoleSplitter           = "AXSplitter"
	RoleColorWell          = "AXColorWell"
	RoleTimeField          = "AXTimeField"
	RoleDateField          = "AXDateField"
	RoleHelpTag            = "AXHelpTag"
	RoleMatte              = "AXMatteRole"
	RoleDockItem           = "AXDockItem"
	RoleRuler              = "AXRuler"
	RoleRulerMarker        = "AXRulerMarker"
	RoleGrid               = "AXGrid"
	RoleLevelIndicator     = "AXLevelIndicator"
	RoleCell               = "AXCell"
	RoleLayoutArea         = "AXLayoutArea"
	RoleLayoutItem         = "AXLayoutItem"
	RoleHandle             = "AXHandle"
	RolePopover            = "AXPopover"
	RoleLink               = "AXLink"
	RoleWebArea            = "AXWebArea"
)

// Subroles.
const (
	SubroleCloseButton      = "AXCloseButton"
	SubroleMinimizeButton   = "AXMinimizeButton"
	SubroleZoomButton       = "AXZoomButton"
	SubroleToolbarButton    = "AXToolbarButton"
	SubroleFullScreenButton = "AXFullScreenButton"
	SubroleSecureTextField  = "AXSecureTextField"
	SubroleTableRow         = "AXTableRow"
	SubroleOutlineRow       = "AXOutlineRow"
	SubroleStandardWindow   = "AXStandardWindow"
	SubroleDialog           = "AXDialog"
	SubroleSystemDialog     = "AXSystemDialog"
	SubroleFloatingWindow   = "AXFloatingWindow"
	SubroleSearchField      = "AXSearchField"
	SubroleSwitch           = "AXSwitch"
	SubroleToggle           = "AXToggle"
	SubroleTabButton        = "AXTabButton"
)
