package cmd

import (
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CheckCmd creates the check command, which only tests whether a path is a repository.
func CheckCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Exit 0 if the path is a Git working tree, 1 otherwise",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to check",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Git backend (cli, gogit)",
			},
			&cli.StringFlag{
				Name:  "git-bin",
				Usage: "Path to the git binary",
			},
		},
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Logger.Sync() }()

	if !ctx.VCS.IsRepository(c.Context, ctx.RepoPath) {
		color.New(color.FgRed).Fprintf(c.App.Writer, "❌ %s is not a git repository\n", ctx.RepoPath)
		return cli.Exit("", 1)
	}
	color.New(color.FgGreen).Fprintf(c.App.Writer, "✅ %s is a git repository\n", ctx.RepoPath)
	return nil
}
