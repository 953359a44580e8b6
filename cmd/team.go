// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shuleni/school-records/internal/types"
	"github.com/shuleni/school-records/pkg/team"
)

func roleArg(s string) types.Role {
	return types.Role(s)
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage school team members",
}

var inviteCmd = &cobra.Command{
	Use:   "invite [school-id] [email] [role]",
	Short: "Invite a user to a school",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var resp team.ActionResponse
		err := client.do(context.Background(), "POST", "/api/v1/team", team.ActionRequest{
			Action:   team.ActionInvite,
			SchoolID: args[0],
			Email:    args[1],
			Role:     roleArg(args[2]),
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("%s (status: %s)\n", resp.Message, resp.Status)
		return nil
	},
}

var updateRoleCmd = &cobra.Command{
	Use:   "update-role [school-id] [membership-id] [role]",
	Short: "Change a member's role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var resp team.ActionResponse
		err := client.do(context.Background(), "POST", "/api/v1/team", team.ActionRequest{
			Action:     team.ActionUpdateRole,
			SchoolID:   args[0],
			UserRoleID: args[1],
			Role:       roleArg(args[2]),
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}

		fmt.Println(resp.Message)
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [school-id] [membership-id]",
	Short: "Remove a member from a school",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var resp team.ActionResponse
		err := client.do(context.Background(), "POST", "/api/v1/team", team.ActionRequest{
			Action:     team.ActionRemove,
			SchoolID:   args[0],
			UserRoleID: args[1],
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Println(resp.Message)
		return nil
	},
}

var cancelInvitationCmd = &cobra.Command{
	Use:   "cancel-invitation [school-id] [invitation-id]",
	Short: "Cancel a pending invitation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var resp team.ActionResponse
		err := client.do(context.Background(), "POST", "/api/v1/team", team.ActionRequest{
			Action:       team.ActionCancelInvitation,
			SchoolID:     args[0],
			InvitationID: args[1],
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}

		fmt.Println(resp.Message)
		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [school-id]",
	Short: "List the members of a school",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var members []team.MemberResponse
		err := client.do(context.Background(), "GET", "/api/v1/schools/"+args[0]+"/members", nil, &members)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSER ID\tROLE\tEMAIL\tNAME")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.UserID, m.Role, m.Email, m.FullName)
		}
		return w.Flush()
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "invitations [school-id]",
	Short: "List the pending invitations of a school",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint, userID)

		var invitations []team.InvitationResponse
		err := client.do(context.Background(), "GET", "/api/v1/schools/"+args[0]+"/invitations", nil, &invitations)
		if err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tSTATUS")
		for _, inv := range invitations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", inv.ID, inv.Email, inv.Role, inv.Status)
		}
		return w.Flush()
	},
}

func init() {
	teamCmd.AddCommand(inviteCmd)
	teamCmd.AddCommand(updateRoleCmd)
	teamCmd.AddCommand(removeMemberCmd)
	teamCmd.AddCommand(cancelInvitationCmd)
	teamCmd.AddCommand(listMembersCmd)
	teamCmd.AddCommand(listInvitationsCmd)
	rootCmd.AddCommand(teamCmd)
}
