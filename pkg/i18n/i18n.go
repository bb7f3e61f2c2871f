// Package i18n loads the gettext catalogue used for labels in rendered output.
// Message ids are the English labels, so an absent catalogue leaves output in English.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

const (
	DefaultLanguage = "en_GB"
	Domain          = "default"
)

// Init points gotext at dir/<lang>/LC_MESSAGES/default.po.
func Init(dir, lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("locales dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("locales dir %q is not a directory", dir)
	}

	gotext.Configure(dir, lang, Domain)
	return nil
}

// ResolveDir finds a relative locales dir next to the running executable when
// it does not exist under the working directory.
func ResolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), dir)
}

// Language returns the configured language.
func Language() string {
	return gotext.GetLanguage()
}
