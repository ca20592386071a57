package commands

type command string

/*
Commands - commands that run on main
*/
var (
	Profile command = "profile"
)
