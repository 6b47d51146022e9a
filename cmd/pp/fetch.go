package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/levigross/grequests"
	_ "github.com/mattn/go-sqlite3"
)

// fetchChart returns the raw .osu file of a beatmap ID, downloading it on a
// cache miss.
func fetchChart(id int, cachePath string) ([]byte, error) {
	db, err := openCache(cachePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if data, ok := cachedChart(db, id); ok {
		return data, nil
	}

	data, err := downloadChart(id)
	if err != nil {
		return nil, err
	}

	storeChart(db, id, data)

	return data, nil
}

func downloadChart(id int) ([]byte, error) {
	resp, err := grequests.Get(fmt.Sprintf("https://osu.ppy.sh/osu/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, fmt.Errorf("chart %d: unexpected status %d", id, resp.StatusCode)
	}

	data := resp.Bytes()
	if len(data) == 0 {
		return nil, fmt.Errorf("chart %d does not exist", id)
	}

	return data, nil
}

func openCache(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	initStatement := `
	create table if not exists charts
	  (
		  id integer not null primary key,
		  data bytearray
	  );
	`
	if _, err = db.Exec(initStatement); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func cachedChart(db *sql.DB, id int) ([]byte, bool) {
	var data []byte

	err := db.QueryRow("select data from charts where id = ?", id).Scan(&data)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	return data, true
}

func storeChart(db *sql.DB, id int, data []byte) {
	db.Exec("insert or replace into charts(id, data) values(?, ?)", id, data)
}
