package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mediaService "carolinebride.GO/service/media"
)

var (
	resizeSrc     string
	resizeDst     string
	resizeWidth   int
	resizeQuality int
	resizeForce   bool
)

var imagesResizeCmd = &cobra.Command{
	Use:   "images:resize",
	Short: "Generate webp thumbnails for product images",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := mediaService.ResizeDir(resizeSrc, resizeDst, mediaService.ResizeOptions{
			Width:   resizeWidth,
			Quality: resizeQuality,
			Force:   resizeForce,
		})
		if err != nil {
			fmt.Printf("Resize failed: %v\n", err)
			os.Exit(1)
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Resize Report ===
Processed:  %d
Skipped:    %d
Warnings:   %d
`, res.Processed, res.Skipped, len(res.Warnings))
	},
}

func init() {
	imagesResizeCmd.Flags().StringVarP(&resizeSrc, "src", "s", "media/product", "Source image directory")
	imagesResizeCmd.Flags().StringVarP(&resizeDst, "dst", "o", "media/cache", "Output thumbnail directory")
	imagesResizeCmd.Flags().IntVarP(&resizeWidth, "width", "w", 600, "Thumbnail width in px")
	imagesResizeCmd.Flags().IntVarP(&resizeQuality, "quality", "q", 80, "Webp quality (1-100)")
	imagesResizeCmd.Flags().BoolVar(&resizeForce, "force", false, "Regenerate existing thumbnails")
	rootCmd.AddCommand(imagesResizeCmd)
}
