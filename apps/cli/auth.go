package main

import (
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/prachishaw/ClassCapsule/apps"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/user"
)

func (cli *commandLine) addAuthCommands(topLevel *cobra.Command) {
	var creds user.Credentials
	loginCmd := &cobra.Command{
		Use:     "login",
		Short:   "Log in; the password is prompted next",
		Example: "classcapsule login --email teacher@demo.com",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := cli.promptPassword(cmd)
			if err != nil {
				return err
			}
			creds.Password = pwd
			return cli.login(cmd, creds)
		},
	}
	loginCmd.Flags().StringVar(&creds.Email, "email", "", "The email to log in with.")

	var (
		reg    user.Registration
		role   string
		gradYr int
	)
	registerCmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account and log in; the password is prompted next",
		Example: "classcapsule register --name \"Alex Doe\" --email alex@demo.com --role student",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := cli.promptPassword(cmd)
			if err != nil {
				return err
			}
			reg.Password = pwd
			reg.Role = user.Role(role)
			if cmd.Flags().Changed("graduation-year") {
				reg.GraduationYear = &gradYr
			}
			return cli.register(cmd, reg)
		},
	}
	registerCmd.Flags().StringVar(&reg.Name, "name", "", "Full name.")
	registerCmd.Flags().StringVar(&reg.Email, "email", "", "Email address.")
	registerCmd.Flags().StringVar(&role, "role", "", "One of: "+roleNames()+".")
	registerCmd.Flags().StringVar(&reg.Department, "department", "", "Department (optional).")
	registerCmd.Flags().IntVar(&gradYr, "graduation-year", 0, "Graduation year (optional).")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.gate.Logout()
			cli.println("Logged out.")
			return nil
		},
	}

	demoCmd := &cobra.Command{
		Use:       "demo ROLE",
		Short:     "Log in as the demo account of ROLE",
		Example:   "classcapsule demo administrator",
		Args:      cobra.ExactArgs(1),
		ValidArgs: roleValues(),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := user.ParseRole(args[0])
			if !ok {
				return apps.NewArgumentErrorf("invalid role %q, expected one of: %s", args[0], roleNames())
			}
			id, _ := user.DemoIdentity(r)
			cli.gate.AssumeDemoIdentity(id)
			cli.welcome(id)
			return nil
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the current identity",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			tbl := uitable.New()
			tbl.AddRow("Name:", id.Name)
			tbl.AddRow("Email:", id.Email)
			tbl.AddRow("Role:", dashboard.RoleDisplayName(id.Role))
			if id.Department != "" {
				tbl.AddRow("Department:", id.Department)
			}
			if id.GraduationYear != nil {
				tbl.AddRow("Graduation year:", *id.GraduationYear)
			}
			cli.println(tbl)
			return nil
		}),
	}

	topLevel.AddCommand(loginCmd, registerCmd, logoutCmd, demoCmd, whoamiCmd)
}

func (cli *commandLine) promptPassword(cmd *cobra.Command) (string, error) {
	cli.printf("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	cli.println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		_ = cmd.Usage()
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) login(cmd *cobra.Command, creds user.Credentials) error {
	if err := creds.Validate(cli.validate); err != nil {
		return cli.validationError(err)
	}
	return cli.authenticated(cmd, cli.gate.Login(creds))
}

func (cli *commandLine) register(cmd *cobra.Command, reg user.Registration) error {
	if err := reg.Validate(cli.validate); err != nil {
		return cli.validationError(err)
	}
	return cli.authenticated(cmd, cli.gate.Register(reg))
}

func (cli *commandLine) authenticated(cmd *cobra.Command, result <-chan bool) error {
	ok, err := user.Await(cmd.Context(), result)
	if err != nil {
		return err
	}
	if !ok {
		return errAuthenticationFailed
	}
	id, _ := cli.gate.Current()
	cli.welcome(id)
	return nil
}

func (cli *commandLine) welcome(id user.Identity) {
	bold := color.New(color.Bold)
	cli.printf("Welcome, %s (%s)\n", bold.Sprint(id.Name), dashboard.RoleDisplayName(id.Role))
}

func roleValues() []string {
	vals := make([]string, 0, len(user.AllRoles))
	for _, r := range user.AllRoles {
		vals = append(vals, string(r))
	}
	return vals
}

func roleNames() string {
	return strings.Join(roleValues(), ", ")
}

