package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailash19961996/Artisty/internal/config"
)

// --- search ---

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the gallery",
	Long: `Search the gallery with the storefront ranking.

Examples:
  artisty search ocean sunset
  artisty search "neon pride" --page 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		page, _ := cmd.Flags().GetInt("page")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := fmt.Sprintf("/api/search?q=%s&page=%d", url.QueryEscape(query), page)
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var result struct {
			Items []struct {
				Name   string  `json:"name"`
				Origin string  `json:"origin"`
				Price  float64 `json:"price"`
			} `json:"items"`
			HasMore  bool `json:"has_more"`
			Explicit bool `json:"explicit"`
			Total    int  `json:"total"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if len(result.Items) == 0 {
			fmt.Println("No artworks found.")
			return nil
		}

		for _, a := range result.Items {
			printArtwork(a.Name, a.Origin, a.Price)
		}
		fmt.Printf("\n%d of %d results", len(result.Items), result.Total)
		if result.HasMore {
			fmt.Printf(" (more on page %d)", page+1)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("page", 0, "zero-based result page")
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one message to the gallery assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/chat", map[string]string{"message": message})
		if err != nil {
			return err
		}

		var result struct {
			Response   string `json:"response"`
			AgentUsed  bool   `json:"agent_used"`
			WebActions []struct {
				Type  string `json:"type"`
				Value string `json:"value"`
			} `json:"web_actions"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Response)
		if !result.AgentUsed {
			printWarning("assistant offline, canned reply")
		}
		for _, a := range result.WebActions {
			if a.Value != "" {
				fmt.Printf("  %s %s %s\n", colorize(colorCyan, "action:"), a.Type, a.Value)
			} else {
				fmt.Printf("  %s %s\n", colorize(colorCyan, "action:"), a.Type)
			}
		}
		return nil
	},
}

// --- cart ---

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect or modify the session cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/cart")
		if err != nil {
			return err
		}
		return printCart(resp)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <artwork-id>",
	Short: "Add an artwork to the cart by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid artwork id %q", args[0])
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/cart", map[string]int{"artwork_id": id})
		if err != nil {
			return err
		}

		var result struct {
			Line struct {
				Artwork struct {
					Name string `json:"name"`
				} `json:"artwork"`
			} `json:"line"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}
		printSuccess("Added %s to cart", result.Line.Artwork.Name)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <artwork-id>",
	Short: "Remove one copy of an artwork from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid artwork id %q", args[0])
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete(cmd.Context(), "/api/cart/"+strconv.Itoa(id))
		if err != nil {
			return err
		}
		return printCart(resp)
	},
}

func printCart(resp *http.Response) error {
	var cart struct {
		Items []struct {
			Artwork struct {
				Name   string  `json:"name"`
				Origin string  `json:"origin"`
				Price  float64 `json:"price"`
			} `json:"artwork"`
			Quantity int `json:"quantity"`
		} `json:"items"`
		Count      int     `json:"count"`
		TotalPrice float64 `json:"total_price"`
		View       string  `json:"view"`
	}
	if err := decodeJSON(resp, &cart); err != nil {
		return err
	}

	if cart.Count == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}

	for _, line := range cart.Items {
		qty := ""
		if line.Quantity > 1 {
			qty = fmt.Sprintf(" x%d", line.Quantity)
		}
		printArtwork(line.Artwork.Name+qty, line.Artwork.Origin, line.Artwork.Price)
	}
	fmt.Printf("\n%d item(s), total $%.0f\n", cart.Count, cart.TotalPrice)
	return nil
}

func init() {
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}

// --- interactions ---

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Manage the chat interaction log",
}

var interactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.adminGet(cmd.Context(), fmt.Sprintf("/api/interactions?limit=%d", limit))
		if err != nil {
			return err
		}

		var interactions []struct {
			ID          string `json:"id"`
			CreatedAt   string `json:"created_at"`
			UserMessage string `json:"user_message"`
			Source      string `json:"source"`
		}
		if err := decodeJSON(resp, &interactions); err != nil {
			return err
		}

		if len(interactions) == 0 {
			fmt.Println("No interactions found.")
			return nil
		}

		for _, ix := range interactions {
			msg := ix.UserMessage
			if len(msg) > 80 {
				msg = msg[:80] + "..."
			}
			fmt.Printf("%s  %s  [%s]  %s\n",
				colorize(colorCyan, ix.ID[:8]),
				ix.CreatedAt,
				ix.Source,
				msg,
			)
		}
		return nil
	},
}

var interactionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.adminGet(cmd.Context(), "/api/interactions/"+args[0])
		if err != nil {
			return err
		}

		var interaction any
		if err := decodeJSON(resp, &interaction); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(interaction)
	},
}

var interactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.adminDelete(cmd.Context(), "/api/interactions/"+args[0])
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}
		printSuccess("Deleted interaction %s", args[0])
		return nil
	},
}

func init() {
	interactionsListCmd.Flags().Int("limit", 20, "maximum number of interactions to list")
	interactionsCmd.AddCommand(interactionsListCmd)
	interactionsCmd.AddCommand(interactionsShowCmd)
	interactionsCmd.AddCommand(interactionsDeleteCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		keys := config.ShowAll(cfg)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
