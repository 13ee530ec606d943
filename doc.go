// Package usedrag provides a drag hook for [Ebitengine] scene nodes.
//
// A [DragHook] listens for raw pointerdown, pointermove and pointerup events
// on an [Element] and turns them into drag reports for a [DragHandler]:
//
//   - pointerdown records the grab origin (pointer position relative to the
//     element's top-left corner) and reports nothing.
//   - pointermove while dragging reports [DragMove] with the pointer position
//     minus the origin, i.e. where the element's corner should go.
//   - pointerup reports [DragEnd] with the absolute pointer position and ends
//     the drag.
//
// # Quick start
//
//	scene := usedrag.NewScene()
//	box := usedrag.NewNode("box", 60, 60)
//	scene.Root().AddChild(box)
//
//	usedrag.UseDrag(scene, box, usedrag.DragFunc(func(p usedrag.DragPhase, dx, dy float64) {
//		if p == usedrag.DragMove {
//			box.X, box.Y = dx, dy
//		}
//	}), usedrag.HookConfig{Name: "box"})
//
//	usedrag.Run(scene, usedrag.RunConfig{Title: "drag", Width: 640, Height: 480})
//
// # Lifecycle
//
// [UseDrag] ties a hook to a [Node]: listeners are attached when the node is
// mounted into a scene and removed when it is disposed. Hooks can also be
// driven by hand with [NewDragHook], [DragHook.Mount] and [DragHook.Destroy]
// against any [Element]. Destroy is idempotent.
//
// # Execution context
//
// Handlers run inside the scene's [Runtime]. [Cell] writes are only accepted
// while the runtime is active, so a handler may update Cells directly. Raw
// node listeners run outside it and should use [Runtime.Post] or
// [Runtime.Enter].
//
// # Errors
//
// Setup and registration failures are returned as [*Error]. Failures that
// happen during event delivery, including handler panics, go to the hook's
// [ErrorHandler]; the default is a [LogHandler] writing to stderr.
//
// # Testing
//
// [Scene.InjectPress], [Scene.InjectMove], [Scene.InjectRelease] and
// [Scene.InjectDrag] queue synthetic pointer input for the following frames.
// [LoadTestScript] drives the same input from a JSON script.
//
// ECS integration lives in the ecs sub-module
// (github.com/phanxgames/usedrag/ecs).
//
// [Ebitengine]: https://ebitengine.org
package usedrag
