package course2osm

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const (
	managerSlotsElement = "saveSlot"
	managerSlotElement  = "slot"
	slotAttrID          = "id"
	slotAttrFileName    = "fileName"
	slotAttrName        = "name"
	slotAttrUsed        = "isUsed"
)

// Save is a manager slot pointing to a stored course file
type Save struct {
	ID       int64
	FileName string
	// Path is a display name of the course
	Path string
	Used bool
}

// CourseManager is a list of save slots
type CourseManager struct {
	Saves []Save
}

// ParseCourseManager reads manager descriptor.
/*
	Slots which miss any of required attributes or are not used are dropped:

	<courseManager>
		<saveSlot>
			<slot id="30" fileName="courseStorage0001.xml" name="someName" isUsed="true"/>
		</saveSlot>
	</courseManager>
*/
func ParseCourseManager(root *etree.Element) (*CourseManager, error) {
	manager := &CourseManager{
		Saves: []Save{},
	}
	for _, slots := range root.SelectElements(managerSlotsElement) {
		for _, slot := range slots.SelectElements(managerSlotElement) {
			attrs := attributes(slot)
			idText, okID := attrs[slotAttrID]
			fileName, okFile := attrs[slotAttrFileName]
			name, okName := attrs[slotAttrName]
			usedText, okUsed := attrs[slotAttrUsed]
			if !okID || !okFile || !okName || !okUsed {
				continue
			}
			if !strings.EqualFold(usedText, "true") {
				continue
			}
			id, err := parseInt("slot", slotAttrID, idText)
			if err != nil {
				return nil, err
			}
			manager.Saves = append(manager.Saves, Save{
				ID:       id,
				FileName: fileName,
				Path:     name,
				Used:     true,
			})
		}
	}
	return manager, nil
}

// LoadCourseManager reads manager descriptor file
func LoadCourseManager(fileName string) (*CourseManager, error) {
	root, err := loadXML(fileName)
	if err != nil {
		return nil, err
	}
	manager, err := ParseCourseManager(root)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't parse course manager '%s'", fileName)
	}
	return manager, nil
}
