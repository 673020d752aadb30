// Package clipboard wraps the system clipboard for the copy-to-clipboard
// action (commit hash, file path, branch name), the same cross-platform
// approach the rest of this module's lineage uses rather than shelling out
// to pbcopy/xclip/clip.exe directly.
package clipboard

import "github.com/atotto/clipboard"

// System is the default Clipboard backed by the OS clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}
