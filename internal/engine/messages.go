package engine

import "fmt"

// Player-facing lines. Content supplies everything else.
const (
	msgAlreadyUsed       = "You already used this."
	msgPairMismatch      = "You're not sure how these go together."
	msgMissingSomething  = "It feels like you're missing something here."
	msgDoorCantUse       = "You're not sure how to use these right now."
	msgDoorPairMismatch  = "This combination doesn't seem to work."
	msgEmptyBag          = "Your bag is empty."
	msgCarryingPrefix    = "You are carrying: "
	msgGroundTextPattern = " There is a %s on the ground."
)

func msgAlreadyInBag(slug string) string {
	return fmt.Sprintf("The %s is already in your bag.", slug)
}

func msgPutInBag(slug string) string {
	return fmt.Sprintf("You put the %s into your bag.", slug)
}

func msgDropped(slug string) string {
	return fmt.Sprintf("You drop the %s on the ground.", slug)
}

func msgCantUse(slug string) string {
	return fmt.Sprintf("You're not sure how to use a %s right now.", slug)
}

func msgNeedsPartner(slug string) string {
	return fmt.Sprintf("You're not sure what to do with a %s right now. "+
		"Maybe this object has to be used with something else.", slug)
}

func msgUsedUp(slug string) string {
	return fmt.Sprintf("The %s is already all used up.", slug)
}

func msgLocked(slug string) string {
	return fmt.Sprintf("It seems like this %s is locked.", slug)
}

func msgBackIn(room fmt.Stringer) string {
	return fmt.Sprintf("You are back in the %s.", room)
}

func msgNotHere(slug string) string {
	return fmt.Sprintf("You don't see a %s here.", slug)
}

func msgNotAWayOut(slug string) string {
	return fmt.Sprintf("You can't go anywhere through the %s.", slug)
}

// GroundText is the room text an object gets once it has been dropped
func GroundText(slug string) string {
	return fmt.Sprintf(msgGroundTextPattern, slug)
}
