package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type AdversaryTag struct{}

var AdversaryTagComponent = NewComponent[AdversaryTag]()
