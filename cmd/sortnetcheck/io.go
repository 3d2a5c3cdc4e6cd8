package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mizar/sortingnetwork-tauri-app/layout"
)

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeSVG(path string, pos layout.Pos, svg layout.SVG) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svg.Width, svg.Height, svg.Width, svg.Height)
	fmt.Fprintf(f, `<path d="%s" stroke="black" fill="none"/>`+"\n", svg.PathNodes)
	fmt.Fprintf(f, `<path d="%s" fill="black"/>`+"\n", svg.PathCmpNormal)
	fmt.Fprintf(f, `<path d="%s" fill="none" stroke="black"/>`+"\n", svg.PathCmpUnused)
	fmt.Fprintf(f, `<path d="%s" fill="none" stroke="gray" stroke-dasharray="2,2"/>`+"\n", svg.PathNodesUnknown)
	fmt.Fprintf(f, `<path d="%s" fill="red"/>`+"\n", svg.PathNodesUnsorted)
	fmt.Fprintln(f, `</svg>`)
	return nil
}
