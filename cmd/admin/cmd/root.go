package cmd

import (
	"context"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/safafin/go-loan-api/cmd/setup"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/models"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin tooling for the loan API",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(seedAdminCmd)

	seedAdminCmd.Flags().StringP(seedAdminCmdName, "n", "", "admin first name")
	seedAdminCmd.MarkFlagRequired(seedAdminCmdName)
	seedAdminCmd.Flags().StringP(seedAdminCmdSurname, "s", "", "admin surname")
	seedAdminCmd.MarkFlagRequired(seedAdminCmdSurname)
	seedAdminCmd.Flags().StringP(seedAdminCmdUsername, "u", "", "admin username")
	seedAdminCmd.MarkFlagRequired(seedAdminCmdUsername)
	seedAdminCmd.Flags().StringP(seedAdminCmdPassword, "p", "", "admin password")
	seedAdminCmd.MarkFlagRequired(seedAdminCmdPassword)
}

var (
	seedAdminCmd = &cobra.Command{
		Use:     "seed-admin",
		Short:   "Create an admin user that can manage customers",
		Long:    ``,
		Example: "admin seed-admin -n={name} -s={surname} -u={username} -p={password}",
		Run:     seedAdmin,
	}
	seedAdminCmdName     = "name"
	seedAdminCmdSurname  = "surname"
	seedAdminCmdUsername = "username"
	seedAdminCmdPassword = "password"
)

func seedAdmin(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(seedAdminCmdName)
	surname, _ := ccmd.Flags().GetString(seedAdminCmdSurname)
	username, _ := ccmd.Flags().GetString(seedAdminCmdUsername)
	password, _ := ccmd.Flags().GetString(seedAdminCmdPassword)

	s, _, err := setup.Init("admin")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		s.WriteDB.Close()
		s.ReadDB.Close()
		s.Cache.Close()
	}()

	created, err := s.Service.Customer.Create(ctx, models.CreateCustomer{
		Name:        name,
		Surname:     surname,
		Username:    username,
		Password:    password,
		Role:        models.RoleAdmin,
		CreditLimit: decimal.Zero,
	})
	if err != nil {
		log.Fatalf(ctx, "failed to create admin user: %v", err)
	}

	log.Infof(ctx, "admin user %q created with id %d", created.Username, created.ID)
}
