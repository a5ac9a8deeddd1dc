package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	tetris "github.com/Ammar-HADDAD/TETRIS-VS-AI"
	"github.com/Ammar-HADDAD/TETRIS-VS-AI/store"
	"github.com/JoelOtter/termloop"
)

const maxUsernameLen = 12

func main() {
	name := flag.String("name", "", "player username")
	dbPath := flag.String("db", "tetris.db", "path to score database")
	seed := flag.Int64("seed", 0, "fixed session seed, 0 for random")
	leaderboard := flag.Bool("leaderboard", false, "print the top 10 scores and exit")
	history := flag.Bool("history", false, "print recent game history and exit")
	flag.Parse()

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("cannot open store: %v", err)
	}
	defer st.Close()

	if *leaderboard {
		printLeaderboard(st)
		return
	}
	if *history {
		printHistory(st)
		return
	}

	if *name == "" {
		log.Fatal("a username is required to play, pass one with -name")
	}
	username := *name
	if len(username) > maxUsernameLen {
		username = username[:maxUsernameLen]
	}

	var opts []tetris.SessionOption
	if *seed != 0 {
		opts = append(opts, tetris.WithSeed(*seed))
	}
	session := tetris.NewSession(opts...)

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(newGameEntity(session, username))
	game.Screen().SetLevel(level)
	game.Start()

	if session.IsOver() {
		saveResults(st, session, username)
		printResult(session, username)
	}
}

func saveResults(st *store.Store, session *tetris.Session, username string) {
	result := session.Result()

	if _, err := st.SaveHistory(store.HistoryRecord{
		Username:     username,
		Winner:       result.Winner,
		HumanScore:   result.HumanScore,
		AIScore:      result.AIScore,
		SurvivalTime: result.SurvivalTime,
	}); err != nil {
		log.Printf("cannot save game history: %v", err)
	}

	if _, err := st.SaveScore(store.ScoreRecord{
		Username:     username,
		Score:        result.HumanScore,
		SurvivalTime: result.SurvivalTime,
	}); err != nil {
		log.Printf("cannot save score: %v", err)
	}

	if _, err := st.SaveScore(store.ScoreRecord{
		Username:     store.AIUsername,
		Score:        result.AIScore,
		SurvivalTime: result.SurvivalTime,
	}); err != nil {
		log.Printf("cannot save AI score: %v", err)
	}
}

func printResult(session *tetris.Session, username string) {
	result := session.Result()
	fmt.Println("GAME OVER")
	fmt.Printf("Winner: %s\n", result.Winner)
	fmt.Printf("%s: %d\n", username, result.HumanScore)
	fmt.Printf("AI: %d\n", result.AIScore)
	fmt.Printf("Game duration: %.2fs\n", result.SurvivalTime.Seconds())
}

func printLeaderboard(st *store.Store) {
	scores, err := st.TopScores(10)
	if err != nil {
		log.Fatalf("cannot load leaderboard: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tName\tScore\tTime\tDate")
	for i, rec := range scores {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.0fmin\t%s\n",
			i+1, rec.Username, rec.Score,
			rec.SurvivalTime.Minutes(), rec.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func printHistory(st *store.Store) {
	games, err := st.RecentGames(10)
	if err != nil {
		log.Fatalf("cannot load game history: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tWinner\tHuman\tAI\tTime\tDate")
	for _, rec := range games {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0fmin\t%s\n",
			rec.Username, rec.Winner, rec.HumanScore, rec.AIScore,
			rec.SurvivalTime.Minutes(), rec.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}
