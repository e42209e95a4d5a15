package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	client := NewApiClient()

	if ok, err := client.CheckHealth(); !ok {
		fmt.Printf("Cannot reach API server at %s: %v\n", client.BaseURL, err)
		os.Exit(1)
	}

	fmt.Println("Juice Tycoon CLI")
	fmt.Println("Commands: state | pour <vessel> <fruit> | serve <vessel> | reset | diff <easy|medium|hard> | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var (
			snap *Snapshot
			err  error
		)

		switch fields[0] {
		case "quit", "exit":
			return
		case "state":
			snap, err = client.GetState()
		case "pour":
			if len(fields) != 3 {
				fmt.Println("usage: pour <vessel> <fruit>")
				continue
			}
			vessel, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Println("vessel must be a number")
				continue
			}
			snap, err = client.SubmitFruit(vessel, fields[2])
		case "serve":
			if len(fields) != 2 {
				fmt.Println("usage: serve <vessel>")
				continue
			}
			vessel, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Println("vessel must be a number")
				continue
			}
			snap, err = client.ServeVessel(vessel)
		case "reset":
			snap, err = client.ResetSession()
		case "diff":
			if len(fields) != 2 {
				fmt.Println("usage: diff <easy|medium|hard>")
				continue
			}
			snap, err = client.SetDifficulty(fields[1])
		default:
			fmt.Printf("unknown command: %s\n", fields[0])
			continue
		}

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printSnapshot(snap)
	}
}

func printSnapshot(snap *Snapshot) {
	if snap == nil {
		return
	}

	if !snap.Active {
		fmt.Printf("Time's up! Final score: %d (streak %d)\n", snap.Score, snap.Streak)
		return
	}

	fmt.Printf("[%s] score %d | streak %d | session %ds | order %ds\n",
		snap.Difficulty, snap.Score, snap.Streak, snap.SessionTimeRemaining, snap.OrderTimeRemaining)

	if snap.Order != nil {
		fmt.Printf("Order #%d: %s for %s %s (needs %s, penalty %d)\n",
			snap.Order.ID, snap.Order.Recipe.Name, snap.Order.Customer.Name, snap.Order.Customer.Glyph,
			strings.Join(snap.Order.Recipe.FruitIDs, ", "), snap.Order.PenaltyPoints)
	}

	for i, vessel := range snap.Vessels {
		if len(vessel) == 0 {
			fmt.Printf("  vessel %d: empty\n", i)
		} else {
			fmt.Printf("  vessel %d: %s\n", i, strings.Join(vessel, ", "))
		}
	}

	if len(snap.UnlockedAchievements) > 0 {
		fmt.Printf("Achievements: %s\n", strings.Join(snap.UnlockedAchievements, ", "))
	}
}
