// Package theme maps semantic text tags to display styles.
//
// The editor core only labels text (Normal, Keyword, Cursor, ...); a
// front end asks the Theme how each tag looks. Colors are parsed and
// blended with go-colorful.
package theme
