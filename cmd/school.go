// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shuleni/school-records/pkg/school"
)

var schoolCode string

var schoolCmd = &cobra.Command{
	Use:   "school",
	Short: "Manage schools",
}

var createSchoolCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new school",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var resp school.SchoolResponse
		err := client.do(context.Background(), "POST", "/api/v1/schools", school.CreateSchoolRequest{
			Name: args[0],
			Code: schoolCode,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to create school: %w", err)
		}

		fmt.Printf("School created: %s (ID: %s)\n", resp.Name, resp.ID)
		return nil
	},
}

var listSchoolsCmd = &cobra.Command{
	Use:   "list",
	Short: "List schools for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var schools []school.SchoolResponse
		err := client.do(context.Background(), "GET", "/api/v1/schools", nil, &schools)
		if err != nil {
			return fmt.Errorf("failed to list schools: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCODE")
		for _, s := range schools {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Code)
		}
		return w.Flush()
	},
}

func init() {
	createSchoolCmd.Flags().StringVar(&schoolCode, "code", "", "Unique short code for the school")
	_ = createSchoolCmd.MarkFlagRequired("code")

	schoolCmd.AddCommand(createSchoolCmd)
	schoolCmd.AddCommand(listSchoolsCmd)
	rootCmd.AddCommand(schoolCmd)
}
