package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	scheduleRepo "github.com/m04kA/barber-booking/internal/infra/storage/schedule"
	specialDaysRepo "github.com/m04kA/barber-booking/internal/infra/storage/specialdays"
	settingsService "github.com/m04kA/barber-booking/internal/service/settings"
	getAvailableSlotsUC "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barber-booking/pkg/metrics"
	"github.com/m04kA/barber-booking/pkg/txmanager"
)

// defaultsLoader расписание по умолчанию без обращения к БД
type defaultsLoader struct{}

func (defaultsLoader) LoadSchedule(ctx context.Context) (*availability.Schedule, error) {
	return availability.FromSettings(domain.DefaultScheduleSettings())
}

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		dateStr  string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the working window and bookable slots for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			location, err := cfg.Booking.Location()
			if err != nil {
				return err
			}

			date := time.Now().In(location)
			if dateStr != "" {
				date, err = time.ParseInLocation(domain.DateFormat, dateStr, location)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", dateStr)
				}
			}

			var loader getAvailableSlotsUC.ScheduleLoader = defaultsLoader{}
			if !defaults {
				db, wrappedDB, err := openDB(cfg, log, nil, nil)
				if err != nil {
					return err
				}
				defer db.Close()

				loader = settingsService.NewService(
					scheduleRepo.NewRepository(wrappedDB),
					specialDaysRepo.NewRepository(wrappedDB),
					nil,
					txmanager.NewTransactionManager(wrappedDB),
					log,
				)
			}

			var noMetrics *metrics.Metrics
			uc := getAvailableSlotsUC.NewUseCase(loader, noMetrics, getAvailableSlotsUC.Options{
				MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
				Location:                location,
			}, log)

			resp, err := uc.Execute(cmd.Context(), &getAvailableSlotsUC.Request{Date: date})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", domain.DateKey(resp.Date), resp.Window.Label)
			if !resp.Window.IsOpen {
				fmt.Fprintln(out, "closed")
				return nil
			}
			fmt.Fprintf(out, "open %s-%s, every %d min\n", resp.Window.OpenTime, resp.Window.CloseTime, resp.Granularity)
			for _, slot := range resp.Slots {
				fmt.Fprintln(out, slot)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date in YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "use the built-in default schedule instead of the database")

	return cmd
}
