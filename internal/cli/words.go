package cli

import (
	"github.com/spf13/cobra"
)

func newWordsCmd(a *app) *cobra.Command {
	var userOnly bool
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List native words, and any words defined by preload files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			sections := []string{sectionNatives, sectionWords}
			if userOnly {
				sections = sections[1:]
			}
			return a.renderer(cmd).snapshot(sess.Snapshot(), sections...)
		},
	}
	cmd.Flags().BoolVar(&userOnly, "user", false, "only list user defined words")
	return cmd
}
