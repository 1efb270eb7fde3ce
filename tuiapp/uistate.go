package tuiapp

// uiState tells which part of the screen receives key presses. The page itself is tracked by the
// view controller.
type uiState int

const (
	browsing  uiState = iota // keys navigate the current page
	menuOpen                 // page menu dropped down, keys move within the menu
	searching                // gallery search field focused, keys are typed into it
	lightbox                 // single photo shown on top of the gallery
)
