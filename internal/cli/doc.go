// Package cli implements the pmvault command line: account initialisation
// and entry add/list/show/delete, each run as one cobra subcommand.
//
// Every command except init authenticates first (username and master
// password) and holds the resulting session only for the duration of that
// command. All authentication failures print the same message.
//
// Input is read from the App reader; passwords come from the terminal without
// echo when stdin is a TTY, and as plain lines otherwise.
package cli
