package cmd

import (
	"github.com/spf13/cobra"

	"github.com/niranjandahal/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `Renders index.html with production asset paths into the output
directory and copies the stylesheet, the browser runtime and the public
directory next to it. The result is meant to be hosted under the base path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			appConfig.OutputDir = out
		}
		c, err := loadContent()
		if err != nil {
			return err
		}
		return site.Build(site.BuildOptions{
			Content:   c,
			BasePath:  appConfig.BasePath,
			OutputDir: appConfig.OutputDir,
			PublicDir: appConfig.PublicDir,
			Logger:    logger,
		})
	},
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(buildCmd)
}
