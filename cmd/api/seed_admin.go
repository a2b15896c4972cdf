package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/employee"
	"github.com/spf13/cobra"
)

func seedAdminCmd() *cobra.Command {
	var req employee.SignUpRequest

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			slog.SetDefault(newLogger(cfg.SlogLevel()))

			db, err := database.NewPostgreSQLDB(cmd.Context(), cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			svc := employeeService.NewEmployeeService(postgresql.NewEmployeeRepository(db))
			admin, err := svc.CreateAdmin(cmd.Context(), req)
			switch {
			case errors.Is(err, employee.ErrEmployeeIDExists), errors.Is(err, employee.ErrEmailExists):
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s already exists: %v\n", req.ID, err)
				return nil
			case err != nil:
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s <%s>\n", admin.ID, admin.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "ADMIN-001", "Employee ID")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Name, "name", "Administrator", "Display name")
	cmd.Flags().StringVar(&req.Password, "password", "", "Initial password")
	cmd.Flags().StringVar(&req.Department, "department", "Management", "Department")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
