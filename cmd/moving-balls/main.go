package main

import (
	"flag"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "", "scene file in YAML (uses the embedded default when empty)")
	useGrid := flag.Bool("grid", false, "index bodies with a uniform grid instead of a quadtree")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	scene := DefaultScene()
	if *scenePath != "" {
		s, err := LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("loading scene %s: %v", *scenePath, err)
		}
		scene = s
	}

	game := NewGame(scene, *scenePath, *useGrid, *debug)

	if *scenePath != "" {
		stop, err := watchScene(*scenePath, game.reload)
		if err != nil {
			log.Printf("scene watching disabled: %v", err)
		} else {
			defer stop()
		}
	}

	ebiten.SetWindowSize(int(scene.Width)*2, int(scene.Height)*2)
	ebiten.SetWindowTitle("moving balls")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// watchScene reloads the scene file on every write and hands the parsed
// result to the game. Parse failures keep the running scene.
func watchScene(path string, reload chan<- Scene) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				scene, err := LoadScene(path)
				if err != nil {
					log.Printf("ignoring scene change: %v", err)
					continue
				}
				select {
				case reload <- scene:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("scene watcher: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}
