package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"proptrack/internal/config"
	"proptrack/internal/database"
	"proptrack/internal/platform/user"
	"proptrack/pkg/utils"
)

var (
	apiBaseURL  string
	accessToken string
)

type ResponseError struct {
	Message string `json:"message"`
}

var apiServiceBase = func() *resty.Client {
	return resty.New().
		SetBaseURL(apiBaseURL).
		SetHeader("Accept", "application/json").
		SetAuthToken(accessToken).
		SetError(&ResponseError{}).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				if apiErr, ok := resp.Error().(*ResponseError); ok && apiErr.Message != "" {
					return fmt.Errorf("%s", apiErr.Message)
				}
				return fmt.Errorf("%s", resp.Status())
			}

			return nil
		})
}

func openStore() *gorm.DB {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	return db
}

var rootCmd = &cobra.Command{
	Use:   "proptrack",
	Short: "Proptrack CLI",
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openStore()
		defer database.Close(db)

		newUser := database.User{Email: args[0]}
		if err := user.NewService(db).Create(&newUser); err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Println("User ID :", newUser.ID)
		fmt.Println("Email   :", newUser.Email)
	},
}

var userTokenCmd = &cobra.Command{
	Use:   "token <user_id>",
	Short: "Issue an access token for a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openStore()
		defer database.Close(db)

		if _, err := user.NewService(db).GetUserByID(args[0]); err != nil {
			fmt.Println("Error:", err)
			return
		}

		days, _ := cmd.Flags().GetInt("days")
		token := database.AccessToken{
			Token:     fmt.Sprintf("pmat%s", utils.GenerateRandomString(40)),
			UserID:    args[0],
			ExpiredAt: time.Now().AddDate(0, 0, days),
		}

		if err := db.Create(&token).Error; err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Println("User ID :", token.UserID)
		fmt.Println("Token   :", token.Token)
		fmt.Println("Expires :", token.ExpiredAt.Format(time.RFC3339))
	},
}

var userProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Get user profile from the API",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiServiceBase().R().
			SetResult(&database.User{}).
			Get("/api/user/me")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		profile := resp.Result().(*database.User)

		fmt.Println("User ID :", profile.ID)
		fmt.Println("Email   :", profile.Email)
	},
}

func main() {
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userTokenCmd)
	userCmd.AddCommand(userProfileCmd)
	rootCmd.AddCommand(userCmd)

	userTokenCmd.Flags().Int("days", 365, "Token lifetime in days")

	rootCmd.PersistentFlags().StringVarP(&apiBaseURL, "url", "u", "http://localhost:3000", "API base URL")
	rootCmd.PersistentFlags().StringVarP(&accessToken, "token", "t", "", "Access token")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
