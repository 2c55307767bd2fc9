package scenes

// SceneChanger lets a scene hand control to another scene or end the program
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}
