// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// loginCommand handles Spotify authentication through the backend
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate with Spotify via the room backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Login,
	}
}

// roomCommand handles hosting and joining listening rooms
func roomCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "room",
		Usage: "Host and join listening rooms",
		Commands: []*cli.Command{
			{
				Name:  "host",
				Usage: "Log in, create a room, and open the interactive queue",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "no-ui",
						Usage: "Create the room and print its share link without opening the TUI",
					},
				},
				Action: r.RoomHost,
			},
			{
				Name:  "join",
				Usage: "Join a room by ID or share link and open the interactive queue",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "room",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-ui",
						Usage: "Join and print room info without opening the TUI",
					},
				},
				Action: r.RoomJoin,
			},
			{
				Name:  "status",
				Usage: "Check whether a room still exists on the backend",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "room",
					},
				},
				Action: r.RoomStatus,
			},
			{
				Name:  "close",
				Usage: "Close a room you host",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "room",
					},
				},
				Action: r.RoomClose,
			},
		},
	}
}

// trackCommand handles one-shot queue operations against a room
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Search and queue tracks in a room",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search the catalog through a room",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "room",
						Usage:    "Room ID to search through",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TrackSearch,
			},
			{
				Name:  "top",
				Usage: "List the host's top tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "room",
						Usage:    "Room ID to fetch top tracks for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TrackTop,
			},
			{
				Name:  "queue",
				Usage: "Add a track to the host's playback queue",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "room",
						Usage:    "Room ID to queue into",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "uri",
						Usage:    "Spotify track URI",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Track name for history records",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Artist name for history records",
					},
				},
				Action: r.TrackQueue,
			},
		},
	}
}

// shareCommand handles deep link construction and parsing
func shareCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "share",
		Usage: "Build and parse room share links",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Build a share link for a room",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "room",
					},
					&cli.StringArg{
						Name: "owner",
					},
				},
				Action: r.ShareBuild,
			},
			{
				Name:  "parse",
				Usage: "Extract the room ID and owner from a share link",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "link",
					},
				},
				Action: r.ShareParse,
			},
		},
	}
}

// historyCommand handles the local room and submission history
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Browse locally recorded rooms and submissions",
		Commands: []*cli.Command{
			{
				Name:  "rooms",
				Usage: "List rooms hosted or joined from this machine",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "role",
						Usage: "Filter by role (host or guest)",
					},
				},
				Action: r.HistoryRooms,
			},
			{
				Name:  "tracks",
				Usage: "List tracks submitted from this machine",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "room",
						Usage: "Filter by room ID",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV instead of plain text",
					},
				},
				Action: r.HistoryTracks,
			},
		},
	}
}

// apiCommand handles direct backend calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the room backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}
