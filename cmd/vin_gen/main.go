package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"infinite-experiment/motorpool/internal/config"
	"infinite-experiment/motorpool/internal/vin"
)

func main() {
	seq := flag.Int64("seq", -1, "derive the VIN for this sequence value instead of drawing one")
	flag.Parse()

	if *seq >= 0 {
		fmt.Println("VIN:", vin.Generate(*seq))
		return
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var next int64
	if err := db.QueryRow(`SELECT nextval('vehicle_id_seq')`).Scan(&next); err != nil {
		log.Fatalf("next sequence value: %v", err)
	}

	fmt.Printf("Sequence %d -> VIN %s\n", next, vin.Generate(next))
}
