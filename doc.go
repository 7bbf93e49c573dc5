// Package easygame is a minimal real-time 2D game runtime for [Ebitengine],
// built for small arcade-style games: paddle games, shooters, dodge games.
//
// It drives a fixed-rate frame loop, represents game objects as positioned,
// collidable, drawable entities, and exposes polling-based keyboard and mouse
// adapters. Games register a per-frame callback and own their entity
// collections; the runtime keeps no registry.
//
// # Quick start
//
//	ctx := easygame.NewContext()
//	canvas := easygame.NewCanvas(ctx, easygame.Size{Width: 800, Height: 600},
//		easygame.Color{R: 30, G: 30, B: 40})
//	engine := easygame.NewEngine(ctx, "My Game", 60, canvas)
//
//	player := easygame.NewPlayer(easygame.Point{X: 400, Y: 300}, 40)
//
//	engine.Run(func() {
//		player.HandleKeys(canvas)
//		player.Draw(canvas.Surface())
//	})
//
// Each tick the engine polls for closure (window close or Escape exits the
// process), invokes the callback exactly once against a freshly cleared
// canvas, presents the result, and waits out the rest of the frame budget.
//
// # Entities
//
// [Character] is a bounding box plus an image: a default colored square, a
// sprite file scaled to size ([NewCharacterFromSprite]), or any substituted
// image ([Character.SetImage]). Collision testing is a plain axis-aligned
// box overlap, linear in the number of entities tested.
//
// [Player] composes a Character with a [KeyboardController]; entities that
// accept input satisfy [Controllable]. [MouseController] is a stateless
// adapter for pointer position, button state, and collider hit tests.
//
// # Automated runs
//
// A JSON input script ([LoadScript], [Engine.SetScriptRunner]) can drive a
// game with synthetic key and pointer input and capture labeled screenshots
// ([Engine.Screenshot]) for visual inspection.
//
// The bundled demo games live under demos/ and are launched by
// cmd/easygame-demos.
//
// [Ebitengine]: https://ebitengine.org
package easygame
