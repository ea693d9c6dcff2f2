package cli

import (
	"errors"
	"fmt"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:     "update [project-id]",
	Aliases: []string{"edit"},
	Short:   "Update a project",
	Long: `Update fields of a project. Only the flags you pass are changed.
Assign and completion dates follow the editor and status automatically.

Examples:
  mergeflow update PROJ-007 --status "in progress"
  mergeflow update PROJ-009 --editor ED-001
  mergeflow update PROJ-006 --unassign --status new
  mergeflow update PROJ-004 --pictures 140 --notes "White background"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateName     string
	updateStatus   string
	updateEditor   string
	updateUnassign bool
	updateDeadline string
	updateCategory string
	updatePictures int
	updateNotes    string
	updateCaller   string
	updateImage    string
	updateHint     string
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status")
	updateCmd.Flags().StringVarP(&updateEditor, "editor", "e", "", "Assign to editor ID")
	updateCmd.Flags().BoolVar(&updateUnassign, "unassign", false, "Remove the editor")
	updateCmd.Flags().StringVarP(&updateDeadline, "deadline", "d", "", "New deadline")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().IntVar(&updatePictures, "pictures", 0, "Pictures edited")
	updateCmd.Flags().StringVarP(&updateNotes, "notes", "n", "", "Replace notes")
	updateCmd.Flags().StringVar(&updateCaller, "caller", "", "Telecaller name")
	updateCmd.Flags().StringVar(&updateImage, "image", "", "Reference image: URL or local file")
	updateCmd.Flags().StringVar(&updateHint, "hint", "", "Short description of the reference image")
	updateCmd.MarkFlagsMutuallyExclusive("editor", "unassign")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		current, err := lookup(a, args[0])
		if err != nil {
			return err
		}
		now := a.store.Now()
		flags := cmd.Flags()

		var patch model.Patch
		if flags.Changed("name") {
			patch.Name = &updateName
		}
		if flags.Changed("status") {
			status, err := model.ParseStatus(updateStatus)
			if err != nil {
				return err
			}
			patch.Status = &status
		}
		if flags.Changed("editor") {
			if _, ok := a.store.GetEditor(updateEditor); !ok {
				return fmt.Errorf("unknown editor: %s", updateEditor)
			}
			patch.EditorID = &updateEditor
		}
		if updateUnassign {
			patch.ClearEditor = true
		}
		if flags.Changed("deadline") {
			deadline, err := parseDeadline(updateDeadline, now)
			if err != nil {
				return err
			}
			patch.Deadline = &deadline
		}
		if flags.Changed("category") {
			category, err := model.ParseCategory(updateCategory)
			if err != nil {
				return err
			}
			patch.Category = &category
		}
		if flags.Changed("pictures") {
			patch.PicturesEdited = &updatePictures
		}
		if flags.Changed("notes") {
			patch.Notes = &updateNotes
		}
		if flags.Changed("caller") {
			patch.CallerName = &updateCaller
		}
		if flags.Changed("image") {
			url, err := loadImage(updateImage, cfg.Storage.MaxImageBytes)
			if err != nil {
				return err
			}
			patch.ImageURL = &url
		}
		if flags.Changed("hint") {
			patch.ImageHint = &updateHint
		}

		if patch.IsEmpty() {
			return errors.New("nothing to update, pass at least one field flag")
		}

		p, err := a.store.UpdateProject(cmd.Context(), current.ID, patch.WithDerivedDates(current, now))
		if err != nil {
			return saveErr(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s: \"%s\" %s\n", p.ID, p.Name, statusBadge(&p, now))
		return nil
	})
}
