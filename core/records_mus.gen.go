// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceOKNoCz0echPTiRΣfDxo22wΞΞ = ord.NewSliceSer[ClassroomRecord](ClassroomRecordMUS)
	sliceVW9kiOFLjncΣEwkyYoN7GQΞΞ = ord.NewSliceSer[ContactRecord](ContactRecordMUS)
	sliceXPdxfbBHSn5L79xTHΔjXDQΞΞ = ord.NewSliceSer[StaffRecord](StaffRecordMUS)
	slicekC8TjxoEVkWHMzijMOybBQΞΞ = ord.NewSliceSer[string](ord.String)
	slicevKBxNK4P2E0N9A81hteMcwΞΞ = ord.NewSliceSer[ScheduleRecord](ScheduleRecordMUS)
)

var ClassroomRecordMUS = classroomRecordMUS{}

type classroomRecordMUS struct{}

func (s classroomRecordMUS) Marshal(v ClassroomRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Building, bs[n:])
	n += ord.String.Marshal(v.Floor, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int.Marshal(v.Capacity, bs[n:])
	return n + slicekC8TjxoEVkWHMzijMOybBQΞΞ.Marshal(v.Equipment, bs[n:])
}

func (s classroomRecordMUS) Unmarshal(bs []byte) (v ClassroomRecord, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Building, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Floor, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Capacity, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Equipment, n1, err = slicekC8TjxoEVkWHMzijMOybBQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s classroomRecordMUS) Size(v ClassroomRecord) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Building)
	size += ord.String.Size(v.Floor)
	size += ord.String.Size(v.Description)
	size += varint.Int.Size(v.Capacity)
	return size + slicekC8TjxoEVkWHMzijMOybBQΞΞ.Size(v.Equipment)
}

func (s classroomRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekC8TjxoEVkWHMzijMOybBQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var StaffRecordMUS = staffRecordMUS{}

type staffRecordMUS struct{}

func (s staffRecordMUS) Marshal(v StaffRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Department, bs[n:])
	n += ord.String.Marshal(v.Position, bs[n:])
	n += ord.String.Marshal(v.Phone, bs[n:])
	return n + ord.String.Marshal(v.Office, bs[n:])
}

func (s staffRecordMUS) Unmarshal(bs []byte) (v StaffRecord, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Department, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Position, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phone, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Office, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s staffRecordMUS) Size(v StaffRecord) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Department)
	size += ord.String.Size(v.Position)
	size += ord.String.Size(v.Phone)
	return size + ord.String.Size(v.Office)
}

func (s staffRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ScheduleRecordMUS = scheduleRecordMUS{}

type scheduleRecordMUS struct{}

func (s scheduleRecordMUS) Marshal(v ScheduleRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Subject, bs[n:])
	n += ord.String.Marshal(v.StaffName, bs[n:])
	n += ord.String.Marshal(v.Classroom, bs[n:])
	n += ord.String.Marshal(v.Time, bs[n:])
	n += slicekC8TjxoEVkWHMzijMOybBQΞΞ.Marshal(v.Days, bs[n:])
	return n + ord.String.Marshal(v.Career, bs[n:])
}

func (s scheduleRecordMUS) Unmarshal(bs []byte) (v ScheduleRecord, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Subject, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StaffName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Classroom, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Time, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Days, n1, err = slicekC8TjxoEVkWHMzijMOybBQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Career, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s scheduleRecordMUS) Size(v ScheduleRecord) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Subject)
	size += ord.String.Size(v.StaffName)
	size += ord.String.Size(v.Classroom)
	size += ord.String.Size(v.Time)
	size += slicekC8TjxoEVkWHMzijMOybBQΞΞ.Size(v.Days)
	return size + ord.String.Size(v.Career)
}

func (s scheduleRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekC8TjxoEVkWHMzijMOybBQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ContactRecordMUS = contactRecordMUS{}

type contactRecordMUS struct{}

func (s contactRecordMUS) Marshal(v ContactRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Area, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Phone, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	return n + ord.String.Marshal(v.Hours, bs[n:])
}

func (s contactRecordMUS) Unmarshal(bs []byte) (v ContactRecord, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Area, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phone, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Hours, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s contactRecordMUS) Size(v ContactRecord) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Area)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Phone)
	size += ord.String.Size(v.Location)
	return size + ord.String.Size(v.Hours)
}

func (s contactRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var DatasetMUS = datasetMUS{}

type datasetMUS struct{}

func (s datasetMUS) Marshal(v Dataset, bs []byte) (n int) {
	n = sliceOKNoCz0echPTiRΣfDxo22wΞΞ.Marshal(v.Classrooms, bs)
	n += sliceXPdxfbBHSn5L79xTHΔjXDQΞΞ.Marshal(v.Staff, bs[n:])
	n += slicevKBxNK4P2E0N9A81hteMcwΞΞ.Marshal(v.Schedules, bs[n:])
	return n + sliceVW9kiOFLjncΣEwkyYoN7GQΞΞ.Marshal(v.Contacts, bs[n:])
}

func (s datasetMUS) Unmarshal(bs []byte) (v Dataset, n int, err error) {
	v.Classrooms, n, err = sliceOKNoCz0echPTiRΣfDxo22wΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Staff, n1, err = sliceXPdxfbBHSn5L79xTHΔjXDQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Schedules, n1, err = slicevKBxNK4P2E0N9A81hteMcwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contacts, n1, err = sliceVW9kiOFLjncΣEwkyYoN7GQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s datasetMUS) Size(v Dataset) (size int) {
	size = sliceOKNoCz0echPTiRΣfDxo22wΞΞ.Size(v.Classrooms)
	size += sliceXPdxfbBHSn5L79xTHΔjXDQΞΞ.Size(v.Staff)
	size += slicevKBxNK4P2E0N9A81hteMcwΞΞ.Size(v.Schedules)
	return size + sliceVW9kiOFLjncΣEwkyYoN7GQΞΞ.Size(v.Contacts)
}

func (s datasetMUS) Skip(bs []byte) (n int, err error) {
	n, err = sliceOKNoCz0echPTiRΣfDxo22wΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceXPdxfbBHSn5L79xTHΔjXDQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicevKBxNK4P2E0N9A81hteMcwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceVW9kiOFLjncΣEwkyYoN7GQΞΞ.Skip(bs[n:])
	n += n1
	return
}
