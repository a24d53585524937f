// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package folder

import "fmt"

// Tree is a campaign content tree rooted at Root. All operations are
// path-level: they navigate Subfolders maps and never retain a pointer
// that could later alias into the wrong subtree, so Move/Copy/Delete
// can't accidentally create a cycle.
type Tree struct {
	Root *Folder
}

// NewTree returns a Tree with an empty root folder.
func NewTree() *Tree {
	return &Tree{Root: NewFolder()}
}

// Get returns the folder at path, and false if any segment is missing.
func (t *Tree) Get(path Path) (*Folder, bool) {
	cur := t.Root
	for _, seg := range path {
		next, ok := cur.Subfolders[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// CreateFolder creates an empty child folder named path.Name() under
// path.Parent(). The parent must already exist; the child must not.
func (t *Tree) CreateFolder(path Path) error {
	parentPath, ok := path.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot create the root")
	}
	parent, ok := t.Get(parentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", parentPath)
	}
	name := path.Name()
	if _, exists := parent.Subfolders[name]; exists {
		return fmt.Errorf("folder: %s already exists", path)
	}
	parent.Subfolders[name] = NewFolder()
	return nil
}

// Delete removes the folder (and everything beneath it) at path.
func (t *Tree) Delete(path Path) error {
	parentPath, ok := path.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot delete the root")
	}
	parent, ok := t.Get(parentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", parentPath)
	}
	name := path.Name()
	if _, exists := parent.Subfolders[name]; !exists {
		return fmt.Errorf("folder: %s does not exist", path)
	}
	delete(parent.Subfolders, name)
	return nil
}

// Rename changes the last segment of path to newName, in place.
func (t *Tree) Rename(path Path, newName string) error {
	if !isValidSegment(newName) {
		return fmt.Errorf("folder: invalid name %q", newName)
	}
	parentPath, ok := path.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot rename the root")
	}
	parent, ok := t.Get(parentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", parentPath)
	}
	name := path.Name()
	node, exists := parent.Subfolders[name]
	if !exists {
		return fmt.Errorf("folder: %s does not exist", path)
	}
	if _, taken := parent.Subfolders[newName]; taken {
		return fmt.Errorf("folder: %s already has a child named %q", parentPath, newName)
	}
	delete(parent.Subfolders, name)
	parent.Subfolders[newName] = node
	return nil
}

// Move relinquishes the subtree at src and attaches it under dst's
// parent with dst's name. dst must not already exist. src must not be
// an ancestor of dst (that would require grafting a folder under
// itself, which the tree's downward-only links cannot express anyway).
func (t *Tree) Move(src, dst Path) error {
	if isAncestorOrSelf(src, dst) {
		return fmt.Errorf("folder: cannot move %s into its own subtree %s", src, dst)
	}
	srcParentPath, ok := src.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot move the root")
	}
	srcParent, ok := t.Get(srcParentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", srcParentPath)
	}
	node, exists := srcParent.Subfolders[src.Name()]
	if !exists {
		return fmt.Errorf("folder: %s does not exist", src)
	}

	dstParentPath, ok := dst.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot move onto the root")
	}
	dstParent, ok := t.Get(dstParentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", dstParentPath)
	}
	if _, taken := dstParent.Subfolders[dst.Name()]; taken {
		return fmt.Errorf("folder: %s already exists", dst)
	}

	delete(srcParent.Subfolders, src.Name())
	dstParent.Subfolders[dst.Name()] = node
	return nil
}

// Copy deep-copies the subtree at src and attaches the copy under
// dst's parent with dst's name. dst must not already exist.
func (t *Tree) Copy(src, dst Path) error {
	node, ok := t.Get(src)
	if !ok {
		return fmt.Errorf("folder: %s does not exist", src)
	}
	dstParentPath, ok := dst.Parent()
	if !ok {
		return fmt.Errorf("folder: cannot copy onto the root")
	}
	dstParent, ok := t.Get(dstParentPath)
	if !ok {
		return fmt.Errorf("folder: parent %s does not exist", dstParentPath)
	}
	if _, taken := dstParent.Subfolders[dst.Name()]; taken {
		return fmt.Errorf("folder: %s already exists", dst)
	}
	dstParent.Subfolders[dst.Name()] = node.clone()
	return nil
}

func isAncestorOrSelf(ancestor, descendant Path) bool {
	if len(ancestor) > len(descendant) {
		return false
	}
	for i, seg := range ancestor {
		if descendant[i] != seg {
			return false
		}
	}
	return true
}
