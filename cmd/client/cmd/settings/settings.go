package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
	"goldkeeper/internal/domain/settings"
)

var errAdminOnly = errors.New("настройки магазина доступны только администратору")

// SettingsCmd - настройки магазина
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Настройки магазина",
	Long: `Коэффициент пересчета при скупке золота (обычно 0.900-0.930).

Изменение не затрагивает уже проведенные операции.`,
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать настройки",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if page.Settings == nil {
			return errAdminOnly
		}
		if err := page.Settings.Load(cmd.Context()); err != nil {
			return common.Result(err)
		}

		s, _ := page.Settings.Settings()
		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, s)
		}
		printSettings(cmd, s)
		return nil
	},
}

var SetCmd = &cobra.Command{
	Use:   "set <коэффициент>",
	Short: "Изменить коэффициент пересчета",
	Example: `  goldkeeper settings set 0.916
  goldkeeper settings set 0,92`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, err := strconv.ParseFloat(strings.Replace(args[0], ",", ".", 1), 64)
		if err != nil {
			return fmt.Errorf("некорректное число: %q", args[0])
		}

		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if page.Settings == nil {
			return errAdminOnly
		}
		if err := page.Settings.Save(cmd.Context(), factor); err != nil {
			return common.Result(err)
		}

		s, _ := page.Settings.Settings()
		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, s)
		}
		printSettings(cmd, s)
		return nil
	},
}

func printSettings(cmd *cobra.Command, s settings.ShopSettings) {
	out := common.Output(cmd).Out
	fmt.Fprintf(out, "Коэффициент пересчета:  %s\n", panel.FormatFactor(s.PurchaseConversionFactor))
	fmt.Fprintf(out, "Типичный диапазон:      %s-%s\n",
		panel.FormatFactor(settings.TypicalFactorMin), panel.FormatFactor(settings.TypicalFactorMax))
	if !s.UpdatedAt.IsZero() {
		by := s.UpdatedBy
		if by == "" {
			by = "-"
		}
		fmt.Fprintf(out, "Изменено:               %s (%s)\n", panel.FormatTime(s.UpdatedAt), by)
	}
}
