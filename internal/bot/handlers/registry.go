package handlers

import "strings"

// Command binds one or more text prefixes to a handler. Prefixes include the
// Chinese command names and their English aliases.
type Command struct {
	Prefixes []string
	Handler  HandlerFunc
}

// RegisterAllCommands initializes and returns all text commands in dispatch
// order. Longer prefixes must come before any prefix they contain.
func RegisterAllCommands(deps HandlerDeps) []Command {
	return []Command{
		{Prefixes: []string{"/註冊", "/register"}, Handler: NewRegisterHandler(deps)},
		{Prefixes: []string{"/指令說明", "/help"}, Handler: NewHelpHandler(deps)},
		{Prefixes: []string{"/系統訊息", "/system"}, Handler: NewSystemHandler(deps)},
		{Prefixes: []string{"/清除", "/clear"}, Handler: NewClearHandler(deps)},
		{Prefixes: []string{"/圖像", "/image"}, Handler: NewImageHandler(deps)},
		{
			Prefixes: []string{"政大附近的心理諮商診所有哪些？"},
			Handler:  NewCannedHandler(deps, "counseling", counselingText),
		},
		{
			Prefixes: []string{"政大附近散心地點推薦？"},
			Handler:  NewCannedHandler(deps, "stroll", strollText),
		},
	}
}

// match reports whether text starts with one of the command's prefixes and
// returns the remaining argument text with surrounding space removed.
func (c Command) match(text string) (string, bool) {
	for _, prefix := range c.Prefixes {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(text, prefix)), true
		}
	}
	return "", false
}
