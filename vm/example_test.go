// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm_test

import (
	"fmt"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Shows the basic pull loop: each call to NextOutput runs the program up to
// the next output instruction.
func ExampleInstance_NextOutput() {
	i, err := vm.New()
	if err != nil {
		panic(err)
	}
	err = i.LoadCode("++++++++[>++++++++<-]>+.+.+.")
	if err != nil {
		panic(err)
	}
	for {
		v, ok := i.NextOutput()
		if !ok {
			break
		}
		fmt.Printf("%c", v)
	}
	fmt.Println()

	// Output:
	// ABC
}

// Shows how to grow a program while it runs. The loop opened by the first
// fragment is closed by the second one.
func ExampleInstance_AppendCode() {
	i, _ := vm.New()
	if err := i.LoadCode("+++[>++<-]>."); err != nil {
		panic(err)
	}
	v, _ := i.NextOutput()
	fmt.Println(v)

	_, ok := i.NextOutput()
	fmt.Println(ok, i.Halted())

	if err := i.AppendCode("[<+>-]<+."); err != nil {
		panic(err)
	}
	v, ok = i.NextOutput()
	fmt.Println(v, ok)

	err := i.AppendCode("]")
	fmt.Println(errors.Cause(err) == vm.ErrUnbalancedBrackets)

	// Output:
	// 6
	// false true
	// 7 true
	// true
}
