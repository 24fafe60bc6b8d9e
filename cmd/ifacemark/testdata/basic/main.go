package main

import "fmt"

//ifacemark:marker
type Array interface{}

//ifacemark:mark Array
type Grid struct {
	cells []int
}

//ifacemark:marker
type Payload interface {
	Size() int
}

func main() {
	fmt.Println(Grid{cells: []int{1, 2, 3}})
}
