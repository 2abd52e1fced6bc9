package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/NearCounter/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage contract profiles",
	Long:  `Manage profiles for different networks, contracts and accounts.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(profile, "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		printProfile(profile, "")
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.DefaultProfile())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if err := profile.Validate(); err != nil {
			log.Fatalf("Invalid profile: %v", err)
		}

		cfg.Profiles[profileName] = profile

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := profileArg(cfg, args, "Select profile to edit", "")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if err := profile.Validate(); err != nil {
			log.Fatalf("Invalid profile: %v", err)
		}

		cfg.Profiles[profileName] = profile

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := profileArg(cfg, args, "Select profile to delete", "")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err = confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Profiles, profileName)

		if cfg.ActiveProfile == profileName {
			// Fall back to another profile, or recreate the default
			if remaining := profileNames(cfg, ""); len(remaining) > 0 {
				cfg.ActiveProfile = remaining[0]
			} else {
				cfg.ActiveProfile = "default"
				cfg.Profiles["default"] = config.DefaultProfile()
			}
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		profileName, err := profileArg(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileArg returns the profile named in args or lets the user pick one.
func profileArg(cfg *config.Config, args []string, label, exclude string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	names := profileNames(cfg, exclude)
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	return name, err
}

func profileNames(cfg *config.Config, exclude string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != exclude {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func printProfile(profile config.Profile, indent string) {
	fmt.Printf("%sGateway: %s\n", indent, profile.Gateway)
	fmt.Printf("%sNetwork: %s\n", indent, profile.Network)
	if profile.ContractID != "" {
		fmt.Printf("%sContract: %s\n", indent, profile.ContractID)
	}
	if profile.AccountID != "" {
		fmt.Printf("%sAccount: %s\n", indent, profile.AccountID)
	}
	if profile.RPCURL != "" {
		fmt.Printf("%sRPC URL: %s\n", indent, profile.RPCURL)
	}
	if profile.CredentialsDir != "" {
		fmt.Printf("%sCredentials: %s\n", indent, profile.CredentialsDir)
	}
}

// promptProfile asks for every profile field, offering current values as
// defaults.
func promptProfile(profile config.Profile) (config.Profile, error) {
	gatewayPrompt := promptui.Select{
		Label: "Gateway",
		Items: []string{config.GatewayNear, config.GatewayMemory},
	}
	_, gatewayKind, err := gatewayPrompt.Run()
	if err != nil {
		return profile, err
	}
	profile.Gateway = gatewayKind

	networkPrompt := promptui.Select{
		Label: "Network",
		Items: []string{"testnet", "mainnet", "localnet"},
	}
	_, network, err := networkPrompt.Run()
	if err != nil {
		return profile, err
	}
	profile.Network = network

	fields := []struct {
		label string
		value *string
	}{
		{"Contract account", &profile.ContractID},
		{"Your account", &profile.AccountID},
		{"RPC URL (optional)", &profile.RPCURL},
		{"Credentials dir (optional)", &profile.CredentialsDir},
	}
	for _, field := range fields {
		prompt := promptui.Prompt{
			Label:   field.label,
			Default: *field.value,
		}
		value, err := prompt.Run()
		if err != nil {
			return profile, err
		}
		*field.value = value
	}

	return profile, nil
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
