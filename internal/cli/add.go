package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new project",
	Long: `Add a new project. The next PROJ-NNN id is issued automatically.

Examples:
  mergeflow add "Harbor Wedding Album" --deadline +7d --category wedding
  mergeflow add "Loft Staging" --deadline 2025-05-20 --category "real estate" --editor ED-004
  mergeflow add "Coffee Packshots" --deadline tomorrow --category product --image ./ref.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDeadline string
	addCategory string
	addCaller   string
	addNotes    string
	addImage    string
	addHint     string
	addEditor   string
	addStatus   string
	addPictures int
)

func init() {
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "Deadline (e.g., 'tomorrow', '+3d', '2025-01-15')")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (Wedding, Corporate, Real Estate, Product, Event, Personal)")
	addCmd.Flags().StringVar(&addCaller, "caller", "", "Name of the telecaller who took the order")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes")
	addCmd.Flags().StringVar(&addImage, "image", "", "Reference image: URL or local file")
	addCmd.Flags().StringVar(&addHint, "hint", "", "Short description of the reference image")
	addCmd.Flags().StringVarP(&addEditor, "editor", "e", "", "Assign to editor ID")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Initial status (default New, or Assigned with --editor)")
	addCmd.Flags().IntVar(&addPictures, "pictures", 0, "Pictures edited so far")
	_ = addCmd.MarkFlagRequired("deadline")
	_ = addCmd.MarkFlagRequired("category")
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		now := a.store.Now()

		deadline, err := parseDeadline(addDeadline, now)
		if err != nil {
			return err
		}
		category, err := model.ParseCategory(addCategory)
		if err != nil {
			return err
		}

		np := model.NewProject{
			Name:           strings.Join(args, " "),
			Status:         model.StatusNew,
			Category:       category,
			Deadline:       deadline,
			PicturesEdited: addPictures,
			Notes:          addNotes,
			CallerName:     addCaller,
			ImageHint:      addHint,
		}

		if addEditor != "" {
			if _, ok := a.store.GetEditor(addEditor); !ok {
				return fmt.Errorf("unknown editor: %s", addEditor)
			}
			np.EditorID = model.StringPtr(addEditor)
			np.Status = model.StatusAssigned
		}
		if addStatus != "" {
			if np.Status, err = model.ParseStatus(addStatus); err != nil {
				return err
			}
		}
		if np.ImageURL, err = loadImage(addImage, cfg.Storage.MaxImageBytes); err != nil {
			return err
		}

		p, err := a.store.AddProject(cmd.Context(), np.WithDerivedDates(now))
		if err != nil {
			return saveErr(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s: \"%s\" (%s, due %s)\n",
			p.ID, p.Name, p.Category, p.Deadline.Format(dateLayout))
		return nil
	})
}
