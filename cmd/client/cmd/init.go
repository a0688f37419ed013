// cmd/client/cmd/init.go
package cmd

import (
	"safetylog/cmd/client/cmd/auth"
	"safetylog/cmd/client/cmd/incident"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(incident.IncidentCmd)
	incident.IncidentCmd.AddCommand(incident.CreateCmd)
	incident.IncidentCmd.AddCommand(incident.GetCmd)
	incident.IncidentCmd.AddCommand(incident.ListCmd)
	incident.IncidentCmd.AddCommand(incident.UpdateCmd)
	incident.IncidentCmd.AddCommand(incident.DeleteCmd)
	incident.IncidentCmd.AddCommand(incident.SummaryCmd)
	incident.IncidentCmd.AddCommand(incident.ExportCmd)

	rootCmd.AddCommand(themeCmd)
}
