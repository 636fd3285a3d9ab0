package assets

import _ "embed"

// Embedded localization message files, one per supported language.

//go:embed locale/active.en.toml
var LocaleEN []byte

//go:embed locale/active.ru.toml
var LocaleRU []byte
