package main

import (
	"context"
	"fmt"
	"medibook-client/internal/app/agent"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (r *runner) loginCmd() *cobra.Command {
	request := &requests.Login{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				return a.Auth.Login(ctx, request)
			})
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	return cmd
}

func (r *runner) registerCmd() *cobra.Command {
	request := &requests.Register{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				return a.Auth.Register(ctx, request)
			})
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "full name")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	return cmd
}

func (r *runner) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				a.Auth.Logout(ctx)
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func (r *runner) doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "List the doctor roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tSPECIALITY\tFEES\tAVAILABLE")
				for _, doctor := range a.Store.Doctors() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%t\n", doctor.ID, doctor.Name, doctor.Speciality, doctor.Fees, doctor.Available)
				}
				return tw.Flush()
			})
		},
	}
}

func (r *runner) slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots <doctor-id>",
		Short: "Show the free slots of a doctor for the next seven days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				doctor, ok := a.Store.Doctor(args[0])
				if !ok {
					return exceptions.ErrDoctorNotFound(args[0])
				}
				printGrid(cmd, a.Generator.Generate(doctor))
				return nil
			})
		},
	}
}

func (r *runner) bookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book <doctor-id> <day-index> <time>",
		Short: "Book a slot, e.g. book doc1 0 \"10:30 AM\"",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day index must be a number between 0 and 6: %w", err)
			}

			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				if _, err := a.Workflow.Open(ctx, args[0], a.Generator.Now()); err != nil {
					return err
				}
				if _, err := a.Workflow.SelectDay(ctx, slotIndex); err != nil {
					return err
				}
				view, err := a.Workflow.SelectTime(ctx, args[2])
				if err != nil {
					return err
				}
				if view.Selection != "" {
					fmt.Fprintln(cmd.OutOrStdout(), view.Selection)
				}

				outcome := a.Workflow.Submit(ctx)
				if outcome.Err != nil {
					return outcome.Err
				}
				return nil
			})
		},
	}
}

func (r *runner) appointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				list, err := a.Appointments.Load(ctx)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDOCTOR\tDATE\tTIME\tSTATUS")
				for _, appointment := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
						appointment.ID,
						doctorName(appointment),
						utils.FormatSlotDate(appointment.SlotDate),
						appointment.SlotTime,
						appointmentStatus(appointment),
					)
				}
				return tw.Flush()
			})
		},
	}
}

func (r *runner) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				return a.Appointments.Cancel(ctx, args[0])
			})
		},
	}
}

func (r *runner) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withAgent(cmd, func(ctx context.Context, a *agent.Agent) error {
				profile, err := a.Profile.GetProfile(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:    %s\n", profile.Name)
				fmt.Fprintf(out, "Email:   %s\n", profile.Email)
				fmt.Fprintf(out, "Phone:   %s\n", profile.Phone)
				fmt.Fprintf(out, "Address: %s\n", strings.TrimSpace(profile.Address.Line1+" "+profile.Address.Line2))
				fmt.Fprintf(out, "Gender:  %s\n", profile.Gender)
				fmt.Fprintf(out, "Birth:   %s\n", profile.DOB)
				if profile.ImageURL != "" {
					fmt.Fprintf(out, "Image:   %s\n", profile.ImageURL)
				}
				return nil
			})
		},
	}
}

func printGrid(cmd *cobra.Command, grid models.SlotGrid) {
	out := cmd.OutOrStdout()
	for i, day := range grid {
		labels := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			labels = append(labels, strings.ToLower(slot.Label))
		}
		if len(labels) == 0 {
			labels = append(labels, "-")
		}
		fmt.Fprintf(out, "[%d] %s %2d  %s\n", i, day.WeekdayLabel, day.DayOfMonth, strings.Join(labels, ", "))
	}
}

func doctorName(appointment models.Appointment) string {
	if appointment.DocData == nil {
		return appointment.DocID
	}
	return appointment.DocData.Name
}

func appointmentStatus(appointment models.Appointment) string {
	switch {
	case appointment.Cancelled:
		return "cancelled"
	case appointment.IsCompleted:
		return "completed"
	case appointment.Payment:
		return "paid"
	default:
		return "booked"
	}
}
